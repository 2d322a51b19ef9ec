package router

import (
	"github.com/gin-gonic/gin"

	cataloghandler "plantcare_backend/internal/feature/catalog/transport/handler"
	planthandler "plantcare_backend/internal/feature/plants/transport/handler"
	userhandler "plantcare_backend/internal/feature/users/transport/handler"
	"plantcare_backend/internal/platform/http/handler"
)

// NewRouter registers every route of the API.
// Identity travels as the access key in each request, so there is no auth
// middleware; the services themselves reject unknown keys.
func NewRouter(users *userhandler.UserHandler, plants *planthandler.PlantHandler,
	catalog *cataloghandler.CatalogHandler) *gin.Engine {
	r := gin.Default()

	// Liveness probe
	r.GET("/healthz", handler.Health)

	// Account CRUD
	user := r.Group("/user")
	{
		user.POST("/create", users.Create)
		user.POST("/login", users.Login)
		user.GET("/get/:key", users.Get)
		user.PUT("/update", users.Update)
		user.DELETE("/delete", users.Delete)
	}

	// Plant CRUD, scoped to an owner key
	plant := r.Group("/plant")
	{
		plant.GET("/get_user_plants", plants.ListForOwner)
		plant.POST("/create_plant", plants.Create)
		plant.PUT("/update_plant", plants.Update)
		plant.DELETE("/delete_plant", plants.Delete)
	}

	// Species catalog search
	r.GET("/catalog/search", catalog.Search)

	return r
}
