// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"skillswap/internal/delivery/http/middleware"
	"skillswap/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	UserHandler        *handler.UserHandler
	SkillHandler       *handler.SkillHandler
	CategoryHandler    *handler.CategoryHandler
	SubcategoryHandler *handler.SubcategoryHandler
	CityHandler        *handler.CityHandler
	LikeHandler        *handler.LikeHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authMW := r.params.AuthMiddleware

	e.GET("/", handler.Info)

	api := e.Group("/api")
	api.GET("", handler.Info)
	api.GET("/health", handler.HealthCheck)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.params.AuthHandler.Register)
		authGroup.POST("/login", r.params.AuthHandler.Login)
		authGroup.POST("/refresh", r.params.AuthHandler.Refresh)
		authGroup.POST("/logout", r.params.AuthHandler.Logout, authMW.Authenticate)
		authGroup.GET("/me", r.params.AuthHandler.Me, authMW.Authenticate)
	}

	userGroup := api.Group("/users")
	{
		userGroup.GET("", r.params.UserHandler.List, authMW.OptionalAuthenticate)
		userGroup.GET("/:id", r.params.UserHandler.Get, authMW.OptionalAuthenticate)
		userGroup.PUT("/:id", r.params.UserHandler.Update, authMW.Authenticate, authMW.AuthorizeSelf)
		userGroup.DELETE("/:id", r.params.UserHandler.Delete, authMW.Authenticate, authMW.AuthorizeSelf)
	}

	skillGroup := api.Group("/skills")
	{
		skillGroup.GET("", r.params.SkillHandler.List)
		skillGroup.GET("/:id", r.params.SkillHandler.Get)
		skillGroup.POST("", r.params.SkillHandler.Create, authMW.Authenticate)
		skillGroup.PUT("/:id", r.params.SkillHandler.Update, authMW.Authenticate)
		skillGroup.DELETE("/:id", r.params.SkillHandler.Delete, authMW.Authenticate)
	}

	categoryGroup := api.Group("/categories")
	{
		categoryGroup.GET("", r.params.CategoryHandler.List)
		categoryGroup.GET("/:id", r.params.CategoryHandler.Get)
		categoryGroup.POST("", r.params.CategoryHandler.Create, authMW.Authenticate)
		categoryGroup.PUT("/:id", r.params.CategoryHandler.Update, authMW.Authenticate)
		categoryGroup.DELETE("/:id", r.params.CategoryHandler.Delete, authMW.Authenticate)
	}

	subcategoryGroup := api.Group("/subcategories")
	{
		subcategoryGroup.GET("", r.params.SubcategoryHandler.List)
		subcategoryGroup.GET("/:id", r.params.SubcategoryHandler.Get)
		subcategoryGroup.POST("", r.params.SubcategoryHandler.Create, authMW.Authenticate)
		subcategoryGroup.PUT("/:id", r.params.SubcategoryHandler.Update, authMW.Authenticate)
		subcategoryGroup.DELETE("/:id", r.params.SubcategoryHandler.Delete, authMW.Authenticate)
	}

	cityGroup := api.Group("/cities")
	{
		cityGroup.GET("", r.params.CityHandler.List)
		cityGroup.GET("/:id", r.params.CityHandler.Get)
		cityGroup.POST("", r.params.CityHandler.Create, authMW.Authenticate)
		cityGroup.PUT("/:id", r.params.CityHandler.Update, authMW.Authenticate)
		cityGroup.DELETE("/:id", r.params.CityHandler.Delete, authMW.Authenticate)
	}

	likeGroup := api.Group("/likes")
	{
		likeGroup.POST("/users-info", r.params.LikeHandler.UsersInfo, authMW.OptionalAuthenticate)
		likeGroup.GET("/users-info/:userId", r.params.LikeHandler.UserInfo, authMW.OptionalAuthenticate)
		likeGroup.GET("/:id", r.params.LikeHandler.Get)
		likeGroup.POST("", r.params.LikeHandler.Create, authMW.Authenticate)
		likeGroup.DELETE("/:id", r.params.LikeHandler.Delete, authMW.Authenticate)
		likeGroup.DELETE("", r.params.LikeHandler.DeleteByTarget, authMW.Authenticate)
	}
}
