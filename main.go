package main

import "github.com/gracefm/radio-api/cmd"

// @title           Grace FM API
// @version         1.0.0
// @description     Backend for the Grace FM radio station apps: live stream, sermon archive, listener podcasts, comments and analytics
// @contact.name    API Support
// @contact.url     https://github.com/gracefm/radio-api
// @contact.email   support@gracefm.example
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 JWT issued by /api/v1/auth/login, sent as "Bearer <token>"
func main() {
	cmd.Execute()
}
