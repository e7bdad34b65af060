package controller

import (
	"encoding/base64"
	"fmt"

	"lms-presentation-be/internal/dto"
	"lms-presentation-be/internal/pkg/serverutils"
	"lms-presentation-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPresentationController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Import(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Export(ctx *fiber.Ctx) error
	Download(ctx *fiber.Ctx) error

	OpenSession(ctx *fiber.Ctx) error
	SessionState(ctx *fiber.Ctx) error
	EditSession(ctx *fiber.Ctx) error
	SaveSession(ctx *fiber.Ctx) error
	ExportSession(ctx *fiber.Ctx) error
	CloseSession(ctx *fiber.Ctx) error
}

type presentationController struct {
	presentationService service.IPresentationService
}

func NewPresentationController(presentationService service.IPresentationService) IPresentationController {
	return &presentationController{
		presentationService: presentationService,
	}
}

func (c *presentationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/presentation/v1")
	h.Use(serverutils.JwtMiddleware)

	h.Post("session", c.OpenSession)
	h.Get("session/:sid", c.SessionState)
	h.Post("session/:sid/edit", c.EditSession)
	h.Post("session/:sid/save", c.SaveSession)
	h.Get("session/:sid/export", c.ExportSession)
	h.Delete("session/:sid", c.CloseSession)

	h.Post("", c.Create)
	h.Post("import", c.Import)
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Delete(":id", c.Delete)
	h.Get(":id/export", c.Export)
	h.Get(":id/export/file", c.Download)
}

func (c *presentationController) Create(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	var req dto.CreatePresentationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.presentationService.Create(ctx.UserContext(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create presentation", res))
}

// Import accepts a raw {presentation, slides} document as the request body
func (c *presentationController) Import(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	res, err := c.presentationService.Import(ctx.UserContext(), userId, ctx.Body())
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success import presentation", res))
}

func (c *presentationController) List(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	var req dto.ListPresentationsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.presentationService.ListByChapter(ctx.UserContext(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list presentations", res))
}

func (c *presentationController) Show(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	res, err := c.presentationService.Show(ctx.UserContext(), userId, ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show presentation", res))
}

func (c *presentationController) Delete(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	if err := c.presentationService.Delete(ctx.UserContext(), userId, ctx.Params("id")); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete presentation", nil))
}

func (c *presentationController) Export(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	res, err := c.presentationService.ExportPresentation(ctx.UserContext(), userId, ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success export presentation", res))
}

// Download streams the rendered deck as a file attachment
func (c *presentationController) Download(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	res, err := c.presentationService.ExportPresentation(ctx.UserContext(), userId, ctx.Params("id"))
	if err != nil {
		return err
	}

	data, err := base64.StdEncoding.DecodeString(res.Data)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, res.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, res.FileName))
	return ctx.Send(data)
}

func (c *presentationController) OpenSession(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	var req dto.OpenSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.presentationService.OpenSession(ctx.UserContext(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success open session", res))
}

func (c *presentationController) SessionState(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	res, err := c.presentationService.SessionState(ctx.UserContext(), userId, ctx.Params("sid"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get session", res))
}

func (c *presentationController) EditSession(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	var req dto.EditSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.presentationService.ApplyEdit(ctx.UserContext(), userId, ctx.Params("sid"), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success edit session", res))
}

func (c *presentationController) SaveSession(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	res, err := c.presentationService.SaveSession(ctx.UserContext(), userId, ctx.Params("sid"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success save session", res))
}

func (c *presentationController) ExportSession(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	res, err := c.presentationService.ExportSession(ctx.UserContext(), userId, ctx.Params("sid"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success export session", res))
}

func (c *presentationController) CloseSession(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	if err := c.presentationService.CloseSession(ctx.UserContext(), userId, ctx.Params("sid")); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success close session", nil))
}
