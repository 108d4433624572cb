package handler

import (
	"net/http"

	"taskboard/internal/apierr"
	"taskboard/internal/model"
	"taskboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BoardListHandler struct {
	listRepo  repository.BoardListRepositoryInterface
	boardRepo repository.BoardRepositoryInterface
}

func NewBoardListHandler(listRepo repository.BoardListRepositoryInterface, boardRepo repository.BoardRepositoryInterface) *BoardListHandler {
	return &BoardListHandler{
		listRepo:  listRepo,
		boardRepo: boardRepo,
	}
}

type CreateBoardListRequest struct {
	Title   string `json:"title" binding:"required"`
	BoardID string `json:"boardId" binding:"required"`
}

type UpdateBoardListRequest struct {
	Title   string `json:"title" binding:"required"`
	BoardID string `json:"boardId" binding:"required"`
}

type DeleteBoardListRequest struct {
	BoardID string `json:"boardId" binding:"required"`
}

// requireOwnedBoard resolves the board and requires the requester to own it.
// A missing board and a foreign board produce the same nil.
func (h *BoardListHandler) requireOwnedBoard(c *gin.Context, boardID, userID uuid.UUID) (*model.Board, error) {
	return h.boardRepo.FindOwned(c.Request.Context(), boardID, userID)
}

// Create adds a list to a board the requester owns.
func (h *BoardListHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		fail(c, apierr.Unauthorized("Unauthorized route."))
		return
	}

	var req CreateBoardListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apierr.BadRequest("Invalid list data."))
		return
	}

	boardID, err := uuid.Parse(req.BoardID)
	if err != nil {
		fail(c, apierr.BadRequest("Invalid boardId format."))
		return
	}

	board, err := h.requireOwnedBoard(c, boardID, userID)
	if err != nil {
		fail(c, apierr.Internal("Failed to check board access"))
		return
	}
	if board == nil {
		fail(c, apierr.BadRequest("Invalid boardId or user not authorized"))
		return
	}

	list := &model.BoardList{
		ID:      uuid.New(),
		Title:   req.Title,
		BoardID: boardID,
	}

	if err := h.listRepo.Create(c.Request.Context(), list); err != nil {
		fail(c, apierr.Internal("Failed to create list"))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "List created successfully",
		"id":      list.ID,
		"title":   list.Title,
	})
}

// List returns an owned board together with its lists.
func (h *BoardListHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		fail(c, apierr.Unauthorized("Unauthorized route."))
		return
	}

	boardID, err := uuid.Parse(c.Param("boardId"))
	if err != nil {
		fail(c, apierr.BadRequest("Invalid boardId format."))
		return
	}

	board, err := h.requireOwnedBoard(c, boardID, userID)
	if err != nil {
		fail(c, apierr.Internal("Failed to check board access"))
		return
	}
	if board == nil {
		fail(c, apierr.BadRequest("Invalid boardId."))
		return
	}

	lists, err := h.listRepo.GetByBoardID(c.Request.Context(), boardID)
	if err != nil {
		fail(c, apierr.Internal("Failed to fetch lists"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"board": board,
		"data":  lists,
	})
}

// Update retitles a list. Ownership is checked against the boardId supplied
// in the body; the update itself is by listId alone.
func (h *BoardListHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		fail(c, apierr.Unauthorized("Unauthorized route."))
		return
	}

	listID, err := uuid.Parse(c.Param("listId"))
	if err != nil {
		fail(c, apierr.BadRequest("Invalid listId format."))
		return
	}

	var req UpdateBoardListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apierr.BadRequest("Invalid list data."))
		return
	}

	boardID, err := uuid.Parse(req.BoardID)
	if err != nil {
		fail(c, apierr.BadRequest("Invalid boardId format."))
		return
	}

	board, err := h.requireOwnedBoard(c, boardID, userID)
	if err != nil {
		fail(c, apierr.Internal("Failed to check board access"))
		return
	}
	if board == nil {
		fail(c, apierr.BadRequest("Invalid boardId."))
		return
	}

	list, err := h.listRepo.UpdateTitle(c.Request.Context(), listID, req.Title)
	if err != nil {
		fail(c, apierr.Internal("Failed to update list"))
		return
	}
	if list == nil {
		fail(c, apierr.BadRequest("Error updating list"))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"list":    list,
		"message": "List updated successfully.",
	})
}

// Delete removes a list after the same ownership walk as Update. Cards under
// the list are left in place.
func (h *BoardListHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		fail(c, apierr.Unauthorized("Unauthorized route."))
		return
	}

	listID, err := uuid.Parse(c.Param("listId"))
	if err != nil {
		fail(c, apierr.BadRequest("Invalid listId format."))
		return
	}

	var req DeleteBoardListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apierr.BadRequest("Invalid list data."))
		return
	}

	boardID, err := uuid.Parse(req.BoardID)
	if err != nil {
		fail(c, apierr.BadRequest("Invalid boardId format."))
		return
	}

	board, err := h.requireOwnedBoard(c, boardID, userID)
	if err != nil {
		fail(c, apierr.Internal("Failed to check board access"))
		return
	}
	if board == nil {
		fail(c, apierr.BadRequest("Invalid boardId."))
		return
	}

	deleted, err := h.listRepo.Delete(c.Request.Context(), listID)
	if err != nil {
		fail(c, apierr.Internal("Failed to delete list"))
		return
	}
	if !deleted {
		fail(c, apierr.BadRequest("Error deleting list"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "List deleted successfully."})
}
