package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dualpay/market-backend/internal/model"
	"github.com/dualpay/market-backend/internal/service"
)

type SettlementHandler struct {
	svc service.SettlementService
}

func NewSettlementHandler(svc service.SettlementService) *SettlementHandler {
	return &SettlementHandler{svc: svc}
}

type PurchaseRequest struct {
	Quantity uint64 `json:"quantity"`
	Asset    string `json:"asset"`
}

type PurchaseResponse struct {
	Reference   string `json:"reference"`
	ItemID      uint64 `json:"itemId"`
	BuyerUID    string `json:"buyerUid"`
	SellerUID   string `json:"sellerUid"`
	Quantity    uint64 `json:"quantity"`
	UnitPrice   uint64 `json:"unitPrice"`
	Amount      uint64 `json:"amount"`
	Asset       string `json:"asset"`
	TransferRef string `json:"transferRef"`
	CreatedAt   string `json:"createdAt"`
}

type PurchaseListResponse struct {
	Purchases []PurchaseResponse `json:"purchases"`
}

type EarningsResponse struct {
	UID              string `json:"uid"`
	PrimaryBalance   uint64 `json:"primaryBalance"`
	SecondaryBalance uint64 `json:"secondaryBalance"`
}

type WithdrawalResponse struct {
	PrimaryAmount   uint64 `json:"primaryAmount"`
	SecondaryAmount uint64 `json:"secondaryAmount"`
	PrimaryRef      string `json:"primaryRef,omitempty"`
	SecondaryRef    string `json:"secondaryRef,omitempty"`
}

func (h *SettlementHandler) Purchase(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing identity"))
	}
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid id"))
	}
	var req PurchaseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	kind := model.AssetKind(req.Asset)
	if !kind.Valid() {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "asset must be primary or secondary"))
	}
	p, err := h.svc.Buy(c.Request().Context(), itemID, req.Quantity, kind, uid)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, toPurchaseResponse(p))
}

func (h *SettlementHandler) Withdraw(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing identity"))
	}
	w, err := h.svc.Withdraw(c.Request().Context(), uid)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, WithdrawalResponse{
		PrimaryAmount:   w.PrimaryAmount,
		SecondaryAmount: w.SecondaryAmount,
		PrimaryRef:      w.PrimaryRef,
		SecondaryRef:    w.SecondaryRef,
	})
}

// Earnings is a public read; arbitrary uids are safe and read as zeroes.
func (h *SettlementHandler) Earnings(c echo.Context) error {
	uid := c.Param("uid")
	e, err := h.svc.Earnings(c.Request().Context(), uid)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, EarningsResponse{
		UID:              uid,
		PrimaryBalance:   e.PrimaryBalance,
		SecondaryBalance: e.SecondaryBalance,
	})
}

func (h *SettlementHandler) ListMine(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing identity"))
	}
	list, err := h.svc.ListByBuyer(c.Request().Context(), uid)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, toPurchaseListResponse(list))
}

func (h *SettlementHandler) ListSales(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing identity"))
	}
	list, err := h.svc.ListBySeller(c.Request().Context(), uid)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, toPurchaseListResponse(list))
}

func toPurchaseResponse(p *model.Purchase) PurchaseResponse {
	return PurchaseResponse{
		Reference:   p.Reference,
		ItemID:      p.ItemID,
		BuyerUID:    p.BuyerUID,
		SellerUID:   p.SellerUID,
		Quantity:    p.Quantity,
		UnitPrice:   p.UnitPrice,
		Amount:      p.Amount,
		Asset:       string(p.Asset),
		TransferRef: p.TransferRef,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}
}

func toPurchaseListResponse(list []model.Purchase) PurchaseListResponse {
	resp := PurchaseListResponse{Purchases: make([]PurchaseResponse, 0, len(list))}
	for i := range list {
		resp.Purchases = append(resp.Purchases, toPurchaseResponse(&list[i]))
	}
	return resp
}
