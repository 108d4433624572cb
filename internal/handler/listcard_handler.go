package handler

import (
	"net/http"

	"taskboard/internal/apierr"
	"taskboard/internal/model"
	"taskboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ListCardHandler struct {
	cardRepo  repository.ListCardRepositoryInterface
	listRepo  repository.BoardListRepositoryInterface
	boardRepo repository.BoardRepositoryInterface
}

func NewListCardHandler(cardRepo repository.ListCardRepositoryInterface, listRepo repository.BoardListRepositoryInterface, boardRepo repository.BoardRepositoryInterface) *ListCardHandler {
	return &ListCardHandler{
		cardRepo:  cardRepo,
		listRepo:  listRepo,
		boardRepo: boardRepo,
	}
}

type CreateCardRequest struct {
	CardTitle string `json:"cardTitle" binding:"required"`
	ListID    string `json:"listId" binding:"required"`
	BoardID   string `json:"boardId" binding:"required"`
}

type UpdateCardRequest struct {
	ListID *string `json:"listId"`
	Title  *string `json:"title"`
}

type cardUpdateKind int

const (
	moveCard cardUpdateKind = iota + 1
	renameCard
)

// kind decides move-vs-rename once at the boundary. listId wins when both
// fields are sent, matching the published wire behavior.
func (r *UpdateCardRequest) kind() cardUpdateKind {
	switch {
	case r.ListID != nil && *r.ListID != "":
		return moveCard
	case r.Title != nil && *r.Title != "":
		return renameCard
	default:
		return 0
	}
}

// ownsList walks list -> board and reports whether the requester owns the
// board the list sits under.
func (h *ListCardHandler) ownsList(c *gin.Context, listID, userID uuid.UUID) (*model.BoardList, bool, error) {
	list, err := h.listRepo.GetByID(c.Request.Context(), listID)
	if err != nil {
		return nil, false, err
	}
	if list == nil {
		return nil, false, nil
	}

	board, err := h.boardRepo.FindOwned(c.Request.Context(), list.BoardID, userID)
	if err != nil {
		return nil, false, err
	}
	return list, board != nil, nil
}

// Create adds a card to a list that must belong to the stated board, which
// in turn must be owned by the requester.
func (h *ListCardHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		fail(c, apierr.Unauthorized("Unauthorized route."))
		return
	}

	var req CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apierr.BadRequest("Invalid card data."))
		return
	}

	boardID, err := uuid.Parse(req.BoardID)
	if err != nil {
		fail(c, apierr.BadRequest("Invalid boardId format."))
		return
	}

	listID, err := uuid.Parse(req.ListID)
	if err != nil {
		fail(c, apierr.BadRequest("Invalid listId format."))
		return
	}

	board, err := h.boardRepo.FindOwned(c.Request.Context(), boardID, userID)
	if err != nil {
		fail(c, apierr.Internal("Failed to check board access"))
		return
	}
	if board == nil {
		fail(c, apierr.BadRequest("Invalid boardId or user not authorized"))
		return
	}

	list, err := h.listRepo.FindInBoard(c.Request.Context(), listID, boardID)
	if err != nil {
		fail(c, apierr.Internal("Failed to check list"))
		return
	}
	if list == nil {
		fail(c, apierr.BadRequest("Invalid listId or the list does not belong to the provided board."))
		return
	}

	card := &model.ListCard{
		ID:     uuid.New(),
		Title:  req.CardTitle,
		ListID: listID,
	}

	if err := h.cardRepo.Create(c.Request.Context(), card); err != nil {
		fail(c, apierr.Internal("Failed to create card"))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data":    card,
		"message": "Card created successfully.",
	})
}

// GetByList returns the cards of a list after walking the full ownership
// chain.
func (h *ListCardHandler) GetByList(c *gin.Context) {
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

	list, owned, err := h.ownsList(c, listID, userID)
	if err != nil {
		fail(c, apierr.Internal("Failed to check list access"))
		return
	}
	if list == nil {
		fail(c, apierr.BadRequest("Invalid listId."))
		return
	}
	if !owned {
		fail(c, apierr.BadRequest("The board does not belong to this user."))
		return
	}

	cards, err := h.cardRepo.GetByListID(c.Request.Context(), listID)
	if err != nil {
		fail(c, apierr.Internal("Failed to fetch cards"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cards fetched successfully.",
		"data":    cards,
	})
}

// GetByBoard returns every card under the board's lists along with a count.
func (h *ListCardHandler) GetByBoard(c *gin.Context) {
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

	board, err := h.boardRepo.FindOwned(c.Request.Context(), boardID, userID)
	if err != nil {
		fail(c, apierr.Internal("Failed to check board access"))
		return
	}
	if board == nil {
		fail(c, apierr.BadRequest("Invalid boardId or user not authorized"))
		return
	}

	cards, err := h.cardRepo.GetByBoardID(c.Request.Context(), boardID)
	if err != nil {
		fail(c, apierr.Internal("Failed to fetch cards"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Cards fetched successfully.",
		"totalsCards": len(cards),
		"data":        cards,
	})
}

// Update renames a card or moves it to another list. Both the card's
// current chain and, for moves, the target list must resolve to a board the
// requester owns.
func (h *ListCardHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		fail(c, apierr.Unauthorized("Unauthorized route."))
		return
	}

	cardID, err := uuid.Parse(c.Param("cardId"))
	if err != nil {
		fail(c, apierr.BadRequest("Invalid cardId format."))
		return
	}

	var req UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apierr.BadRequest("Invalid card data."))
		return
	}

	kind := req.kind()
	if kind == 0 {
		fail(c, apierr.BadRequest("Either listId or title must be provided."))
		return
	}

	card, err := h.cardRepo.GetByID(c.Request.Context(), cardID)
	if err != nil {
		fail(c, apierr.Internal("Failed to fetch card"))
		return
	}
	if card == nil {
		fail(c, apierr.BadRequest("Invalid cardId."))
		return
	}

	list, owned, err := h.ownsList(c, card.ListID, userID)
	if err != nil {
		fail(c, apierr.Internal("Failed to check card access"))
		return
	}
	if list == nil || !owned {
		fail(c, apierr.BadRequest("The card does not belong to this user."))
		return
	}

	var updated *model.ListCard
	switch kind {
	case moveCard:
		targetListID, err := uuid.Parse(*req.ListID)
		if err != nil {
			fail(c, apierr.BadRequest("Invalid listId format."))
			return
		}

		targetList, targetOwned, err := h.ownsList(c, targetListID, userID)
		if err != nil {
			fail(c, apierr.Internal("Failed to check list access"))
			return
		}
		if targetList == nil || !targetOwned {
			fail(c, apierr.BadRequest("Invalid listId."))
			return
		}

		updated, err = h.cardRepo.UpdateListID(c.Request.Context(), cardID, targetListID)
		if err != nil {
			fail(c, apierr.Internal("Failed to update card"))
			return
		}
	case renameCard:
		updated, err = h.cardRepo.UpdateTitle(c.Request.Context(), cardID, *req.Title)
		if err != nil {
			fail(c, apierr.Internal("Failed to update card"))
			return
		}
	}

	if updated == nil {
		fail(c, apierr.BadRequest("Error updating card."))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Card updated successfully",
		"data":    updated,
	})
}
