package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"metrics-consolidation-backend/internal/model"
	"metrics-consolidation-backend/internal/service"
)

type UserController struct {
	userService service.UserService
}

func NewUserController(userService service.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// RegisterUserRoutes attaches the users CRUD. The guard is optional; pass nil
// middlewares to leave the group open.
func RegisterUserRoutes(router *gin.Engine, controller *UserController, middlewares ...gin.HandlerFunc) {
	users := router.Group("/users", middlewares...)
	{
		users.POST("", controller.CreateUser)
		users.GET("", controller.GetUsers)
		users.GET("/:id", controller.GetUserByID)
		users.PUT("/:id", controller.UpdateUser)
		users.DELETE("/:id", controller.DeleteUser)
	}
}

// CreateUser godoc
// @Summary      Create a user document
// @Description  Stores an arbitrary JSON document in the users collection; the store assigns _id.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user  body      object  true  "Arbitrary user document"
// @Success      201   {object}  model.UserDocument
// @Failure      400   {object}  model.Response
// @Router       /users [post]
func (c *UserController) CreateUser(ctx *gin.Context) {
	var doc model.UserDocument
	if err := ctx.ShouldBindJSON(&doc); err != nil {
		ctx.JSON(http.StatusBadRequest, model.NewResponse("Invalid request body", nil))
		return
	}

	created, err := c.userService.Create(ctx.Request.Context(), doc)
	if err != nil {
		log.Error().Err(err).Msg("Error creating user")
		respondServiceError(ctx, err, "Failed to create user")
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// GetUsers godoc
// @Summary      List all user documents
// @Tags         users
// @Produce      json
// @Success      200  {array}   model.UserDocument
// @Failure      400  {object}  model.Response
// @Router       /users [get]
func (c *UserController) GetUsers(ctx *gin.Context) {
	users, err := c.userService.GetAll(ctx.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error listing users")
		respondServiceError(ctx, err, "Failed to fetch users")
		return
	}
	ctx.JSON(http.StatusOK, users)
}

// GetUserByID godoc
// @Summary      Get a user document by id
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User identifier"
// @Success      200  {object}  model.UserDocument
// @Failure      400  {object}  model.Response "Invalid id format"
// @Failure      404  {object}  model.Response "User not found"
// @Router       /users/{id} [get]
func (c *UserController) GetUserByID(ctx *gin.Context) {
	user, err := c.userService.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err, "Failed to fetch user")
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// UpdateUser godoc
// @Summary      Merge fields into a user document
// @Description  Overwrites only the supplied fields; everything else on the stored document is kept.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id      path      string  true  "User identifier"
// @Param        fields  body      object  true  "Partial document"
// @Success      200     {object}  model.Response
// @Failure      400     {object}  model.Response "Invalid id format"
// @Failure      404     {object}  model.Response "User not found"
// @Router       /users/{id} [put]
func (c *UserController) UpdateUser(ctx *gin.Context) {
	var fields model.UserDocument
	if err := ctx.ShouldBindJSON(&fields); err != nil {
		ctx.JSON(http.StatusBadRequest, model.NewResponse("Invalid request body", nil))
		return
	}

	if err := c.userService.Update(ctx.Request.Context(), ctx.Param("id"), fields); err != nil {
		respondServiceError(ctx, err, "Failed to update user")
		return
	}
	ctx.JSON(http.StatusOK, model.NewResponse("User updated", nil))
}

// DeleteUser godoc
// @Summary      Delete a user document
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User identifier"
// @Success      200  {object}  model.Response
// @Failure      400  {object}  model.Response "Invalid id format"
// @Failure      404  {object}  model.Response "User not found"
// @Router       /users/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	if err := c.userService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondServiceError(ctx, err, "Failed to delete user")
		return
	}
	ctx.JSON(http.StatusOK, model.NewResponse("User deleted", nil))
}
