package api

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/gofiber/fiber/v2"

	"github.com/binaryn3xus/AIForge/internal/model"
	"github.com/binaryn3xus/AIForge/internal/pdf"
	"github.com/binaryn3xus/AIForge/internal/service"
	"github.com/binaryn3xus/AIForge/internal/store"
	"github.com/binaryn3xus/AIForge/internal/util"
)

// Handler holds the dependencies shared by all routes.
type Handler struct {
	rag   *service.RAGService
	llm   *service.LLMClient
	store *store.PgStore
}

func NewHandler(rag *service.RAGService, llm *service.LLMClient, s *store.PgStore) *Handler {
	return &Handler{rag: rag, llm: llm, store: s}
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.SendString("ok")
}

// ListModels proxies the embedding endpoint's model list.
func (h *Handler) ListModels(c *fiber.Ctx) error {
	models, err := h.llm.ListModels(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(models)
}

// IngestPDF uploads a PDF, extracts and chunks its text, embeds each chunk
// and stores it. Per-chunk failures are logged and skipped.
func (h *Handler) IngestPDF(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file is required (form field: file)"})
	}

	saveDir := filepath.Join("data", "pdfs")
	if err := os.MkdirAll(saveDir, 0o755); err != nil {
		log.WithError(err).Error("mkdir failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to prepare storage"})
	}
	savePath := filepath.Join(saveDir, util.Timestamped(file.Filename))
	if err := c.SaveFile(file, savePath); err != nil {
		log.WithError(err).Error("save file failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save file"})
	}

	txt, err := pdf.Extract(savePath)
	if err != nil {
		log.WithError(err).Error("pdf extract failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to extract text from pdf"})
	}
	txt = pdf.Sanitize(txt)
	if len(txt) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "no text extracted from PDF"})
	}

	const chunkSize = 220
	const chunkOverlap = 40
	parts := pdf.ChunkByWords(txt, chunkSize, chunkOverlap)
	if len(parts) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "no chunks created"})
	}

	docName := filepath.Base(savePath)
	saved := 0
	for i, p := range parts {
		ch := model.Chunk{ID: fmt.Sprintf("%s_chunk_%d", docName, i), Text: p}

		emb, err := h.llm.Embed(c.Context(), p)
		if err != nil {
			log.WithError(err).Errorf("embedding failed for %s (%q)", ch.ID, util.TruncateRunes(p, 60))
			continue
		}
		if err := h.store.Add(c.Context(), docName, ch, emb); err != nil {
			log.WithError(err).Errorf("insert failed for %s", ch.ID)
			continue
		}
		saved++
	}

	return c.JSON(fiber.Map{
		"status":       "ok",
		"doc":          docName,
		"chunks_total": len(parts),
		"chunks_saved": saved,
	})
}

// AskQuestion runs retrieval + generation and returns the drained answer.
func (h *Handler) AskQuestion(c *fiber.Ctx) error {
	var req model.AskRequest
	if err := c.BodyParser(&req); err != nil || len(req.Query) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request, expected JSON: {\"query\":\"...\"}"})
	}

	answer, chunks, err := h.rag.Ask(c.Context(), req.Query, req.TopK)
	if errors.Is(err, service.ErrNoContext) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no relevant information found"})
	}
	if err != nil {
		log.WithError(err).Error("ask failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(model.AskResponse{
		Answer:  answer,
		Context: chunks,
		Model:   req.Model,
	})
}
