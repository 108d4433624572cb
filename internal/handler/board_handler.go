package handler

import (
	"net/http"

	"taskboard/internal/apierr"
	"taskboard/internal/model"
	"taskboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BoardHandler struct {
	boardRepo repository.BoardRepositoryInterface
}

func NewBoardHandler(boardRepo repository.BoardRepositoryInterface) *BoardHandler {
	return &BoardHandler{boardRepo: boardRepo}
}

type CreateBoardRequest struct {
	Title string `json:"title" binding:"required"`
}

type UpdateBoardRequest struct {
	Title string `json:"title" binding:"required"`
}

// Create persists a board owned by the requester.
func (h *BoardHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		fail(c, apierr.Unauthorized("Unauthorized route."))
		return
	}

	var req CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apierr.BadRequest("Invalid board data."))
		return
	}

	board := &model.Board{
		ID:        uuid.New(),
		Title:     req.Title,
		CreatedBy: userID,
	}

	if err := h.boardRepo.Create(c.Request.Context(), board); err != nil {
		fail(c, apierr.Internal("Failed to create board"))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      board.ID,
		"title":   board.Title,
		"message": "Board created successfully",
	})
}

// List returns every board the requester owns.
func (h *BoardHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		fail(c, apierr.Unauthorized("Unauthorized route."))
		return
	}

	boards, err := h.boardRepo.GetOwned(c.Request.Context(), userID)
	if err != nil {
		fail(c, apierr.Internal("Failed to fetch boards"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": boards})
}

// Update retitles a board in a single owner-scoped write. A board that is
// missing or owned by someone else is the same 400.
func (h *BoardHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		fail(c, apierr.Unauthorized("Unauthorized route."))
		return
	}

	boardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		fail(c, apierr.BadRequest("Invalid boardId format."))
		return
	}

	var req UpdateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apierr.BadRequest("Invalid boardId or title."))
		return
	}

	board, err := h.boardRepo.UpdateTitleOwned(c.Request.Context(), boardID, userID, req.Title)
	if err != nil {
		fail(c, apierr.Internal("Failed to update board"))
		return
	}
	if board == nil {
		fail(c, apierr.BadRequest("Error updating the board."))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data":    board,
		"message": "Board updated successfully",
	})
}

// Delete removes an owned board. Child lists and cards are left in place.
func (h *BoardHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		fail(c, apierr.Unauthorized("Unauthorized route."))
		return
	}

	boardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		fail(c, apierr.BadRequest("Invalid boardId format."))
		return
	}

	deleted, err := h.boardRepo.DeleteOwned(c.Request.Context(), boardID, userID)
	if err != nil {
		fail(c, apierr.Internal("Failed to delete board"))
		return
	}
	if !deleted {
		fail(c, apierr.BadRequest("Invalid boardId mentioned."))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Board deleted successfully."})
}
