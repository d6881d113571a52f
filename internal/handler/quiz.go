package handler

import (
	"io"
	"mime/multipart"
	"strconv"

	"notes-quiz/internal/domain"
	"notes-quiz/internal/dto"
	"notes-quiz/internal/extract"
	"notes-quiz/internal/logger"
	"notes-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuizHandler handles quiz generation HTTP requests
type QuizHandler struct {
	service service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{service: service}
}

// GenerateQuiz godoc
// @Summary Generate a quiz from uploaded study notes
// @Description Extracts text from the uploaded files, asks the quiz model
// @Description for a structured quiz and returns the validated payload
// @Tags quiz
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "One or more documents (pdf, image, text)"
// @Param count formData int false "Question count (default 10)"
// @Param types formData []string false "Allowed types: mcq, true_false, short_answer"
// @Param difficulty formData string false "easy, medium or hard (default medium)"
// @Success 200 {object} dto.GenerateQuizResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quiz/generate [post]
func (h *QuizHandler) GenerateQuiz(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return domain.NewInvalidInputError("Please upload at least one file.")
	}

	files := form.File["files"]
	if len(files) == 0 {
		return domain.NewInvalidInputError("Please upload at least one file.")
	}

	docs, err := readDocuments(files)
	if err != nil {
		return err
	}

	req, err := parseOptions(form)
	if err != nil {
		return err
	}

	resp, err := h.service.GenerateQuiz(c.Context(), docs, req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

func readDocuments(files []*multipart.FileHeader) ([]extract.Document, error) {
	docs := make([]extract.Document, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return nil, domain.NewInvalidInputError("Could not read uploaded file: " + fh.Filename)
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, domain.NewInvalidInputError("Could not read uploaded file: " + fh.Filename)
		}
		docs = append(docs, extract.Document{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}
	return docs, nil
}

func parseOptions(form *multipart.Form) (dto.GenerateQuizRequest, error) {
	req := dto.DefaultGenerateQuizRequest()

	if vals := form.Value["count"]; len(vals) > 0 {
		n, err := strconv.Atoi(vals[0])
		if err != nil {
			return req, domain.NewInvalidInputError("count must be an integer.")
		}
		// The schema caps a quiz at 100 questions.
		if n < 1 {
			n = 1
		}
		if n > 100 {
			n = 100
		}
		req.Count = n
	}

	if vals := form.Value["types"]; len(vals) > 0 {
		types := make([]domain.QuestionType, 0, len(vals))
		for _, v := range vals {
			t, err := domain.ParseQuestionType(v)
			if err != nil {
				return req, domain.NewInvalidInputError("Unknown question type: " + v)
			}
			types = append(types, t)
		}
		req.Types = types
	}

	if vals := form.Value["difficulty"]; len(vals) > 0 {
		switch domain.Difficulty(vals[0]) {
		case domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard:
			req.Difficulty = domain.Difficulty(vals[0])
		default:
			return req, domain.NewInvalidInputError("difficulty must be easy, medium or hard.")
		}
	}

	logger.Get().Debug("quiz options parsed",
		zap.Int("count", req.Count),
		zap.Any("types", req.Types),
		zap.String("difficulty", string(req.Difficulty)))
	return req, nil
}
