// @title           linkfeed API
// @version         1.0
// @description     Link-sharing API: sign up, log in, post links, vote, browse the feed.
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerToken
// @in              header
// @name            Authorization
// @description     Type "Bearer" followed by a space and your session token.
package api
