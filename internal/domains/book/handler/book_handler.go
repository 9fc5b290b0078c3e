package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"bookreview-backend/internal/domains/book"
	"bookreview-backend/internal/shared/response"
	"bookreview-backend/internal/shared/utils"
	"bookreview-backend/pkg/logger"
)

type BookHandler struct {
	bookService book.Service
}

func NewBookHandler(bookService book.Service) *BookHandler {
	return &BookHandler{
		bookService: bookService,
	}
}

// CreateBook adds a book to the catalog
// POST /books
func (h *BookHandler) CreateBook(c *gin.Context) {
	// Step 1: Bind request body
	var req book.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	// Step 2: Call service
	b, err := h.bookService.AddBook(c.Request.Context(), req)
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			response.BadRequest(c, err.Error())
			return
		}
		logger.Error("create book failed", err)
		response.InternalServerError(c, "server error")
		return
	}

	// Step 3: Return success
	response.Success(c, http.StatusCreated, b)
}

// ListBooks answers the filtered, paginated catalog query
// GET /books?author&genre&search&page&limit
func (h *BookHandler) ListBooks(c *gin.Context) {
	req := book.ListBooksRequest{
		Author: c.Query("author"),
		Genre:  c.Query("genre"),
		Search: c.Query("search"),
		Page:   queryInt(c, "page"),
		Limit:  queryInt(c, "limit"),
	}

	// Normalize up front so the meta block reports the page and limit the
	// query actually ran with, not the raw client input.
	req.Page, req.Limit = utils.NormalizePagination(req.Page, req.Limit, book.DefaultListLimit, book.MaxLimit)

	books, err := h.bookService.ListBooks(c.Request.Context(), req)
	if err != nil {
		logger.Error("list books failed", err)
		response.InternalServerError(c, "server error")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, books, &response.Meta{
		Page:  req.Page,
		Limit: req.Limit,
	})
}

// GetBookDetail returns one book with average rating and reviews
// GET /books/:bookId?page&limit
func (h *BookHandler) GetBookDetail(c *gin.Context) {
	bookID, err := strconv.ParseInt(c.Param("bookId"), 10, 64)
	if err != nil {
		response.NotFound(c, "book not found")
		return
	}

	detail, err := h.bookService.GetBookDetail(c.Request.Context(), bookID, queryInt(c, "page"), queryInt(c, "limit"))
	if err != nil {
		if errors.Is(err, book.ErrBookNotFound) {
			response.NotFound(c, "book not found")
			return
		}
		logger.Error("get book detail failed", err)
		response.InternalServerError(c, "server error")
		return
	}

	response.Success(c, http.StatusOK, detail)
}

// queryInt parses an integer query parameter; 0 means absent/invalid,
// the service substitutes defaults.
func queryInt(c *gin.Context, key string) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return v
}
