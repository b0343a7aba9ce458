package main

// @title TexHub Backend API
// @version 1.0
// @description Textile trading ERP backend: stock lots with color variants, order workflow with stock deduction, customer credit ceilings, adjustments, returns and WhatsApp notification dispatch.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://github.com/RehanShaikh007/texhub-backend

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Auth
// @tag.description Operator authentication

// @tag.name Orders
// @tag.description Order workflow endpoints

// @tag.name Stock
// @tag.description Stock lot management endpoints

// @tag.name Customers
// @tag.description Customer and credit endpoints

// @tag.name Products
// @tag.description Product catalog endpoints

// @tag.name Adjustments
// @tag.description Manual stock correction endpoints

// @tag.name Returns
// @tag.description Return request endpoints

// @tag.name Notifications
// @tag.description Notification settings and audit log

// @tag.name Health
// @tag.description Health check endpoints
