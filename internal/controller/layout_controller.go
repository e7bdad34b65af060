package controller

import (
	"lms-presentation-be/internal/pkg/serverutils"
	"lms-presentation-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ILayoutController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type layoutController struct {
	presentationService service.IPresentationService
}

func NewLayoutController(presentationService service.IPresentationService) ILayoutController {
	return &layoutController{
		presentationService: presentationService,
	}
}

// Layouts are static catalog data and need no login
func (c *layoutController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/layout/v1")
	h.Get("", c.List)
	h.Get(":id", c.Show)
}

func (c *layoutController) List(ctx *fiber.Ctx) error {
	res := c.presentationService.ListLayouts(ctx.UserContext())
	return ctx.JSON(serverutils.SuccessResponse("Success list layouts", res))
}

func (c *layoutController) Show(ctx *fiber.Ctx) error {
	res, err := c.presentationService.GetLayout(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show layout", res))
}
