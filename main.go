package main

import "github.com/Sufiyanali07/erp-backend/cmd"

// @title College ERP API
// @version 1.0
// @description Backend API for the college ERP: authentication, fees, documents, exams, and admin reporting

// @host localhost:8080
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	cmd.Execute()
}
