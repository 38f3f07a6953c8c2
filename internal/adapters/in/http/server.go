package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/auth"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/metrics"
)

// Server coordinates between HTTP handlers and application use cases.
// Command endpoints respond with the read model fetched after the write
// commits, so clients always see the same shape from every order endpoint.
type Server struct {
	// Command handlers
	registerUserHandler      commands.RegisterUserCommandHandler
	loginHandler             commands.LoginCommandHandler
	refreshTokenHandler      commands.RefreshTokenCommandHandler
	placeOrderHandler        commands.PlaceOrderCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	createAddressHandler     commands.CreateAddressCommandHandler
	updateAddressHandler     commands.UpdateAddressCommandHandler
	deleteAddressHandler     commands.DeleteAddressCommandHandler

	// Query handlers
	getOrdersHandler     queries.GetOrdersQueryHandler
	getOrderHandler      queries.GetOrderQueryHandler
	getMenuItemsHandler  queries.GetMenuItemsQueryHandler
	getCategoriesHandler queries.GetCategoriesQueryHandler
	getAddressesHandler  queries.GetAddressesQueryHandler
	getUserHandler       queries.GetUserQueryHandler

	tokenIssuer   *auth.TokenIssuer
	serverMetrics *metrics.ServerMetrics
}

// ServerDeps bundles everything the HTTP server needs; constructing the
// server from a struct keeps the composition root readable.
type ServerDeps struct {
	RegisterUserHandler      commands.RegisterUserCommandHandler
	LoginHandler             commands.LoginCommandHandler
	RefreshTokenHandler      commands.RefreshTokenCommandHandler
	PlaceOrderHandler        commands.PlaceOrderCommandHandler
	CancelOrderHandler       commands.CancelOrderCommandHandler
	UpdateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	CreateAddressHandler     commands.CreateAddressCommandHandler
	UpdateAddressHandler     commands.UpdateAddressCommandHandler
	DeleteAddressHandler     commands.DeleteAddressCommandHandler

	GetOrdersHandler     queries.GetOrdersQueryHandler
	GetOrderHandler      queries.GetOrderQueryHandler
	GetMenuItemsHandler  queries.GetMenuItemsQueryHandler
	GetCategoriesHandler queries.GetCategoriesQueryHandler
	GetAddressesHandler  queries.GetAddressesQueryHandler
	GetUserHandler       queries.GetUserQueryHandler

	TokenIssuer   *auth.TokenIssuer
	ServerMetrics *metrics.ServerMetrics
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		registerUserHandler:      deps.RegisterUserHandler,
		loginHandler:             deps.LoginHandler,
		refreshTokenHandler:      deps.RefreshTokenHandler,
		placeOrderHandler:        deps.PlaceOrderHandler,
		cancelOrderHandler:       deps.CancelOrderHandler,
		updateOrderStatusHandler: deps.UpdateOrderStatusHandler,
		createAddressHandler:     deps.CreateAddressHandler,
		updateAddressHandler:     deps.UpdateAddressHandler,
		deleteAddressHandler:     deps.DeleteAddressHandler,
		getOrdersHandler:         deps.GetOrdersHandler,
		getOrderHandler:          deps.GetOrderHandler,
		getMenuItemsHandler:      deps.GetMenuItemsHandler,
		getCategoriesHandler:     deps.GetCategoriesHandler,
		getAddressesHandler:      deps.GetAddressesHandler,
		getUserHandler:           deps.GetUserHandler,
		tokenIssuer:              deps.TokenIssuer,
		serverMetrics:            deps.ServerMetrics,
	}
}

// RegisterRoutes wires all endpoints onto the echo instance. Auth, menu,
// health and metrics endpoints are public; orders and addresses require a
// valid Bearer token.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = newRequestValidator()
	if s.serverMetrics != nil {
		e.Use(metricsMiddleware(s.serverMetrics))
		e.GET("/metrics", echo.WrapHandler(s.serverMetrics.Handler()))
	}
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.POST("/register", s.Register)
	authGroup.POST("/login", s.Login)
	authGroup.POST("/refresh", s.Refresh)

	menuGroup := api.Group("/menu")
	menuGroup.GET("/categories", s.GetCategories)
	menuGroup.GET("/items", s.GetMenuItems)

	protected := api.Group("", authMiddleware(s.tokenIssuer))

	protected.GET("/auth/me", s.Me)

	protected.GET("/orders", s.GetOrders)
	protected.POST("/orders", s.PlaceOrder)
	protected.GET("/orders/:id", s.GetOrder)
	protected.POST("/orders/:id/cancel", s.CancelOrder)
	protected.PATCH("/orders/:id/status", s.UpdateOrderStatus)

	protected.GET("/addresses", s.GetAddresses)
	protected.POST("/addresses", s.CreateAddress)
	protected.PUT("/addresses/:id", s.UpdateAddress)
	protected.DELETE("/addresses/:id", s.DeleteAddress)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Register handles POST /api/v1/auth/register - creates a new user account.
func (s *Server) Register(ctx echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewRegisterUserCommand(req.Email, req.Password, req.FirstName, req.LastName, req.PhoneNumber)
	if err != nil {
		return respondError(ctx, err)
	}

	user, err := s.registerUserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toUserResponse(user))
}

// Login handles POST /api/v1/auth/login - verifies credentials and issues
// an access/refresh token pair.
func (s *Server) Login(ctx echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewLoginCommand(req.Email, req.Password)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.loginHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toTokenResponse(result))
}

// Refresh handles POST /api/v1/auth/refresh - rotates a refresh token.
func (s *Server) Refresh(ctx echo.Context) error {
	var req refreshRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewRefreshTokenCommand(req.RefreshToken)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.refreshTokenHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toTokenResponse(result))
}

// Me handles GET /api/v1/auth/me - returns the authenticated user's
// profile.
func (s *Server) Me(ctx echo.Context) error {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, errorResponse{Error: "Unauthorized"})
	}

	query, err := queries.NewGetUserQuery(userID)
	if err != nil {
		return respondError(ctx, err)
	}

	user, err := s.getUserHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, userResponse{
		ID:          user.ID.String(),
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		PhoneNumber: user.PhoneNumber,
	})
}

// GetCategories handles GET /api/v1/menu/categories.
func (s *Server) GetCategories(ctx echo.Context) error {
	categories, err := s.getCategoriesHandler.Handle(ctx.Request().Context(), queries.NewGetCategoriesQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]categoryResponse, len(categories))
	for i, category := range categories {
		response[i] = categoryResponse{ID: category.ID.String(), Name: category.Name}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetMenuItems handles GET /api/v1/menu/items - lists the catalog,
// optionally filtered by ?category=.
func (s *Server) GetMenuItems(ctx echo.Context) error {
	query := queries.NewGetMenuItemsQuery(ctx.QueryParam("category"))

	items, err := s.getMenuItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]menuItemResponse, len(items))
	for i, item := range items {
		response[i] = toMenuItemResponse(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// PlaceOrder handles POST /api/v1/orders - places a new order from a cart
// payload and responds with the stored order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, errorResponse{Error: "Unauthorized"})
	}

	var req placeOrderRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	paymentMethod, err := order.PaymentMethodFromString(req.PaymentMethod)
	if err != nil {
		return respondError(ctx, err)
	}

	var addressID *kernel.UUID
	if req.AddressID != nil {
		parsed, parseErr := parseUUID("address id", *req.AddressID)
		if parseErr != nil {
			return respondError(ctx, parseErr)
		}
		addressID = &parsed
	}

	items := make([]commands.PlaceOrderCartItem, len(req.Items))
	for i, item := range req.Items {
		menuItemID, parseErr := parseUUID("menu item id", item.MenuItemID)
		if parseErr != nil {
			return respondError(ctx, parseErr)
		}
		items[i] = commands.PlaceOrderCartItem{
			MenuItemID:          menuItemID,
			Quantity:            item.Quantity,
			SpecialInstructions: item.SpecialInstructions,
		}
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, userID, addressID, paymentMethod, req.SpecialNotes, items)
	if err != nil {
		return respondError(ctx, err)
	}

	if _, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	if s.serverMetrics != nil {
		s.serverMetrics.OrdersPlaced.Inc()
	}

	return s.respondWithOrder(ctx, http.StatusCreated, orderID, userID)
}

// GetOrders handles GET /api/v1/orders - lists the caller's orders, newest
// first. ?status= filters by lifecycle state; canceled orders are hidden
// unless ?show_canceled=true or the filter itself is canceled.
func (s *Server) GetOrders(ctx echo.Context) error {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, errorResponse{Error: "Unauthorized"})
	}

	var statusFilter *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		statusFilter = &status
	}
	showCanceled := ctx.QueryParam("show_canceled") == "true"

	query, err := queries.NewGetOrdersQuery(userID, statusFilter, showCanceled)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]orderResponse, len(orders))
	for i, o := range orders {
		response[i] = toOrderResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id - fetches one of the caller's
// orders. Another user's order is indistinguishable from a missing one.
func (s *Server) GetOrder(ctx echo.Context) error {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, errorResponse{Error: "Unauthorized"})
	}

	orderID, err := parseUUID("order id", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID, userID)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel - cancels a pending
// order.
func (s *Server) CancelOrder(ctx echo.Context) error {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, errorResponse{Error: "Unauthorized"})
	}

	orderID, err := parseUUID("order id", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, userID)
	if err != nil {
		return respondError(ctx, err)
	}

	if _, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	if s.serverMetrics != nil {
		s.serverMetrics.OrdersCanceled.Inc()
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID, userID)
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status - moves an
// order along its lifecycle.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, errorResponse{Error: "Unauthorized"})
	}

	orderID, err := parseUUID("order id", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req updateOrderStatusRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	newStatus, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, userID, newStatus)
	if err != nil {
		return respondError(ctx, err)
	}

	if _, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID, userID)
}

// GetAddresses handles GET /api/v1/addresses.
func (s *Server) GetAddresses(ctx echo.Context) error {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, errorResponse{Error: "Unauthorized"})
	}

	query, err := queries.NewGetAddressesQuery(userID)
	if err != nil {
		return respondError(ctx, err)
	}

	addresses, err := s.getAddressesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]addressResponse, len(addresses))
	for i, address := range addresses {
		response[i] = addressResponse{
			ID:            address.ID.String(),
			StreetAddress: address.StreetAddress,
			Apartment:     address.Apartment,
			City:          address.City,
			Phone:         address.Phone,
			IsDefault:     address.IsDefault,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateAddress handles POST /api/v1/addresses.
func (s *Server) CreateAddress(ctx echo.Context) error {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, errorResponse{Error: "Unauthorized"})
	}

	var req addressRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateAddressCommand(userID, req.StreetAddress, req.Apartment, req.City, req.Phone, req.IsDefault)
	if err != nil {
		return respondError(ctx, err)
	}

	address, err := s.createAddressHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toAddressResponse(address))
}

// UpdateAddress handles PUT /api/v1/addresses/:id.
func (s *Server) UpdateAddress(ctx echo.Context) error {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, errorResponse{Error: "Unauthorized"})
	}

	addressID, err := parseUUID("address id", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req addressRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateAddressCommand(addressID, userID, req.StreetAddress, req.Apartment, req.City, req.Phone, req.IsDefault)
	if err != nil {
		return respondError(ctx, err)
	}

	address, err := s.updateAddressHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAddressResponse(address))
}

// DeleteAddress handles DELETE /api/v1/addresses/:id.
func (s *Server) DeleteAddress(ctx echo.Context) error {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, errorResponse{Error: "Unauthorized"})
	}

	addressID, err := parseUUID("address id", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteAddressCommand(addressID, userID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deleteAddressHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// respondWithOrder answers a successful order command or lookup with the
// read model so responses stay consistent across endpoints.
func (s *Server) respondWithOrder(ctx echo.Context, status int, orderID kernel.UUID, userID kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(orderID, userID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(status, toOrderResponse(result))
}

func toTokenResponse(result *commands.LoginResult) tokenResponse {
	return tokenResponse{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		TokenType:    "Bearer",
		User:         toUserResponse(result.User),
	}
}

// parseUUID maps a malformed identifier onto a client error so the
// response is a 400 rather than an internal failure.
func parseUUID(name string, raw string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

func bindAndValidate(ctx echo.Context, req interface{}) error {
	if err := ctx.Bind(req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
	}
	if err := ctx.Validate(req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid request: " + err.Error()})
	}
	return nil
}
