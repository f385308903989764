package main

import (
	_ "github.com/h4ks-com/agri-ledger/docs"
)

// @title           Agri Ledger API
// @version         1.0
// @description     Farm record keeping, land allocation, forecasts and credit scoring
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token
func main() {
	Execute()
}
