package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/atharv2608/alphaware-task-backend/internal/jobboard/dto"
	"github.com/atharv2608/alphaware-task-backend/internal/jobboard/service"
)

type JobHandler struct {
	jobService *service.JobService
}

func NewJobHandler(jobService *service.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

func (h *JobHandler) Post(c *fiber.Ctx) error {
	var input dto.PostJobInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid input",
		})
	}

	job, err := h.jobService.Post(c.UserContext(), AuthFromCtx(c), input)
	if err != nil {
		return respondError(c, err)
	}

	return respondOK(c, fiber.StatusCreated, dto.NewJobOutput(job), "Job Posted")
}

func (h *JobHandler) Edit(c *fiber.Ctx) error {
	var input dto.EditJobInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid input",
		})
	}

	job, err := h.jobService.Edit(c.UserContext(), AuthFromCtx(c), input)
	if err != nil {
		return respondError(c, err)
	}

	return respondOK(c, fiber.StatusOK, dto.NewJobOutput(job), "Job updated")
}

func (h *JobHandler) Delete(c *fiber.Ctx) error {
	var input dto.DeleteJobInput
	// DELETE bodies are optional; the id may come as a query param instead.
	_ = c.BodyParser(&input)
	if input.ID == "" {
		input.ID = c.Query("_id")
	}

	if err := h.jobService.Delete(c.UserContext(), AuthFromCtx(c), input.ID); err != nil {
		return respondError(c, err)
	}

	return respondOK(c, fiber.StatusOK, fiber.Map{}, "Job deleted")
}

func (h *JobHandler) Apply(c *fiber.Ctx) error {
	var input dto.ApplyJobInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid input",
		})
	}

	app, err := h.jobService.Apply(c.UserContext(), AuthFromCtx(c), input)
	if err != nil {
		return respondError(c, err)
	}

	return respondOK(c, fiber.StatusOK, dto.NewApplicationOutput(app), "Job applied")
}

func (h *JobHandler) GetAll(c *fiber.Ctx) error {
	jobs, err := h.jobService.GetAll(c.UserContext(), AuthFromCtx(c))
	if err != nil {
		return respondError(c, err)
	}

	return respondOK(c, fiber.StatusOK, dto.NewJobOutputs(jobs), "Jobs fetched successfully")
}

func (h *JobHandler) Applicants(c *fiber.Ctx) error {
	var input dto.GetApplicantsInput
	_ = c.BodyParser(&input)
	if input.ID == "" {
		input.ID = c.Query("_id")
	}

	apps, err := h.jobService.Applicants(c.UserContext(), AuthFromCtx(c), input.ID)
	if err != nil {
		return respondError(c, err)
	}

	return respondOK(c, fiber.StatusOK, dto.NewApplicationOutputs(apps), "Applications fetched")
}
