package main

import (
	_ "booze/docs"
	"booze/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Booze Storefront API
// @version         1.0
// @description     Cart, delivery address and checkout for the Booze storefront, backed by DynamoDB and Redis.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Session
// @in header
// @name X-Session-ID
// @description Shopper session id returned by the first cart request.

func main() {
	routes.Run()
}
