// Package http exposes the resume processor over fiber.
package http

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tidwall/gjson"

	"resume-builder/internal/analyzer"
	"resume-builder/internal/layout"
	"resume-builder/internal/logger"
	"resume-builder/internal/model"
	"resume-builder/internal/usecase"
)

type Handler struct {
	processor *usecase.Processor
	maxUpload int
}

func NewHandler(p *usecase.Processor, maxUploadBytes int) *Handler {
	return &Handler{processor: p, maxUpload: maxUploadBytes}
}

// Register mounts every route on r.
func (h *Handler) Register(r fiber.Router) {
	r.Get("/", h.Health)
	api := r.Group("/api/resume")
	api.Get("/templates", h.Templates)
	api.Post("/generate", h.Generate)
	api.Post("/preview", h.Preview)
	api.Post("/analyze", h.Analyze)
	api.Post("/analyze/export", h.ExportAnalysis)
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.SendString("Resume builder API is running")
}

type templateInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (h *Handler) Templates(c *fiber.Ctx) error {
	out := []templateInfo{}
	for _, t := range layout.Templates() {
		out = append(out, templateInfo{ID: t.ID(), Name: t.Name()})
	}
	return c.JSON(out)
}

// Generate answers {template, data} with the PDF as an attachment.
func (h *Handler) Generate(c *fiber.Ctx) error {
	body := c.Body()
	if err := model.ValidateGenerate(body); err != nil {
		return h.fail(c, err)
	}
	templateID := gjson.GetBytes(body, "template").String()
	data := gjson.GetBytes(body, "data").Raw

	doc, err := h.processor.Generate(c.UserContext(), templateID, []byte(data))
	if err != nil {
		return h.fail(c, err)
	}
	return sendPDF(c, doc)
}

func (h *Handler) Preview(c *fiber.Ctx) error {
	body := c.Body()
	if err := model.ValidatePreview(body); err != nil {
		return h.fail(c, err)
	}
	html, err := h.processor.Preview(gjson.GetBytes(body, "template").String(), []byte(gjson.GetBytes(body, "data").Raw))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"html": html})
}

// Analyze takes a multipart upload: the PDF under "resume" and the job
// description under "jobDescription".
func (h *Handler) Analyze(c *fiber.Ctx) error {
	fh, err := c.FormFile("resume")
	if err != nil {
		return message(c, fiber.StatusBadRequest, "No resume file uploaded.")
	}
	if h.maxUpload > 0 && fh.Size > int64(h.maxUpload) {
		return message(c, fiber.StatusRequestEntityTooLarge, h.tooLarge())
	}
	if mt, _, _ := mime.ParseMediaType(fh.Header.Get("Content-Type")); mt != "application/pdf" {
		return message(c, fiber.StatusBadRequest, "Only PDF files are allowed!")
	}

	f, err := fh.Open()
	if err != nil {
		return message(c, fiber.StatusBadRequest, "Uploaded file is invalid or empty.")
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil || len(data) == 0 {
		return message(c, fiber.StatusBadRequest, "Uploaded file is invalid or empty.")
	}

	res, err := h.processor.Analyze(c.UserContext(), data, c.FormValue("jobDescription"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(res)
}

// ExportAnalysis answers an analysis document with its printed PDF.
func (h *Handler) ExportAnalysis(c *fiber.Ctx) error {
	body := c.Body()
	if !gjson.ValidBytes(body) || !gjson.ParseBytes(body).IsObject() {
		return message(c, fiber.StatusBadRequest, "Analysis must be a JSON object.")
	}
	// accept both the bare analysis and the analyze response envelope
	if a := gjson.GetBytes(body, "analysis"); a.IsObject() {
		body = []byte(a.Raw)
	}

	doc, err := h.processor.ExportAnalysis(c.UserContext(), model.ParseAnalysis(body))
	if err != nil {
		return h.fail(c, err)
	}
	return sendPDF(c, doc)
}

func sendPDF(c *fiber.Ctx, doc *usecase.Document) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Set("X-Document-Id", doc.ID)
	return c.Send(doc.PDF)
}

// fail maps processor errors onto status codes.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	var verr *model.ValidationError
	status := fiber.StatusInternalServerError
	msg := "An unexpected error occurred."

	switch {
	case errors.As(err, &verr):
		status, msg = fiber.StatusBadRequest, err.Error()
	case errors.Is(err, layout.ErrUnknownTemplate):
		status, msg = fiber.StatusBadRequest, err.Error()
	case errors.Is(err, analyzer.ErrEmptyJobDescription):
		status, msg = fiber.StatusBadRequest, "No job description provided."
	case errors.Is(err, analyzer.ErrEmptyDocument):
		status, msg = fiber.StatusBadRequest, "Could not extract readable text from the PDF or the PDF is empty."
	case errors.Is(err, analyzer.ErrUnreadableDocument):
		status, msg = fiber.StatusBadRequest, "Error processing PDF. Please try a different file."
	case errors.Is(err, analyzer.ErrNoJSON):
		msg = "AI response did not contain valid JSON structure."
	case errors.Is(err, analyzer.ErrInvalidJSON):
		msg = "Invalid JSON format received from AI after cleaning. Please try again."
	case errors.Is(err, usecase.ErrNoAnalyzer), errors.Is(err, usecase.ErrNoRenderer):
		status, msg = fiber.StatusServiceUnavailable, err.Error()
	}

	ev := logger.Ctx(c.UserContext()).Warn()
	if status >= fiber.StatusInternalServerError {
		ev = logger.Ctx(c.UserContext()).Error()
	}
	ev.Err(err).Str("path", c.Path()).Int("status", status).Msg("request failed")
	return message(c, status, msg)
}

func (h *Handler) tooLarge() string {
	if h.maxUpload < 1024*1024 {
		return "File too large."
	}
	return fmt.Sprintf("File too large: limit is %d MB.", h.maxUpload/(1024*1024))
}

func message(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"message": strings.TrimSpace(msg)})
}
