package controller

import (
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	"schoolku_backend/internals/features/finance/fees/dto"
	"schoolku_backend/internals/features/finance/fees/model"
	"schoolku_backend/internals/features/finance/fees/service"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/helpers/scope"
)

var validate = validator.New()

type FeeController struct {
	DB                *gorm.DB
	MidtransServerKey string
}

func NewFeeController(db *gorm.DB) *FeeController {
	return &FeeController{
		DB:                db,
		MidtransServerKey: configs.GetEnv("MIDTRANS_SERVER_KEY"),
	}
}

// POST /api/a/fees
func (ctrl *FeeController) Create(c *fiber.Ctx) error {
	var req dto.CreateFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !req.HasSingleTarget() {
		return helper.JsonError(c, fiber.StatusBadRequest, "A fee targets a student, a class, or the whole school — not both a student and a class")
	}

	if req.FeeStudentID != nil {
		var count int64
		if err := ctrl.DB.WithContext(c.Context()).
			Table("students").
			Where("student_id = ? AND student_deleted_at IS NULL", *req.FeeStudentID).
			Count(&count).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check student")
		}
		if count == 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Student not found")
		}
	}
	if req.FeeClassID != nil {
		var count int64
		if err := ctrl.DB.WithContext(c.Context()).
			Table("classes").
			Where("class_id = ? AND class_deleted_at IS NULL", *req.FeeClassID).
			Count(&count).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check class")
		}
		if count == 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Class not found")
		}
	}

	m := req.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create fee")
	}
	return helper.JsonCreated(c, "Fee created successfully", dto.NewFeeResponse(m))
}

// GET /api/u/fees
func (ctrl *FeeController) List(c *fiber.Ctx) error {
	rc := helper.ScopeRequestContext(c)
	rs, err := scope.NewResolver(ctrl.DB).Resolve(c.Context(), rc)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve access scope")
	}
	sc := scope.ComposeFeeScope(rc, helper.ScopeParams(c, "studentId", "classId", "status", "search"), rs)

	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.Context()).Model(&model.FeeModel{})
	q = sc.Apply(q)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count fees")
	}

	var rows []model.FeeModel
	if err := q.Order("fees.fee_due_date ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch fees")
	}

	resp := make([]*dto.FeeResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, dto.NewFeeResponse(&rows[i]))
	}
	return helper.JsonList(c, "Fees fetched successfully", resp,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(resp)))
}

// GET /api/u/fees/:id
func (ctrl *FeeController) GetByID(c *fiber.Ctx) error {
	m, err := ctrl.findScoped(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Fee fetched successfully", dto.NewFeeResponse(m))
}

// findScoped loads a fee by path id with the actor's role layer
// applied, so nobody can read another family's bill by id.
func (ctrl *FeeController) findScoped(c *fiber.Ctx) (*model.FeeModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid fee ID")
	}

	rc := helper.ScopeRequestContext(c)
	rs, err := scope.NewResolver(ctrl.DB).Resolve(c.Context(), rc)
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve access scope")
	}
	sc := scope.ComposeFeeScope(rc, nil, rs)

	q := ctrl.DB.WithContext(c.Context()).
		Model(&model.FeeModel{}).
		Where("fees.fee_id = ?", id)
	q = sc.Apply(q)

	var m model.FeeModel
	if err := q.First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Fee not found")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch fee")
	}
	return &m, nil
}

// PUT /api/a/fees/:id
func (ctrl *FeeController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid fee ID")
	}

	var req dto.UpdateFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.FeeModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "fee_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Fee not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch fee")
	}

	req.ApplyToModel(&m)
	if err := ctrl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update fee")
	}
	return helper.JsonUpdated(c, "Fee updated successfully", dto.NewFeeResponse(&m))
}

// DELETE /api/a/fees/:id
func (ctrl *FeeController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid fee ID")
	}

	var m model.FeeModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "fee_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Fee not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch fee")
	}

	if err := ctrl.DB.WithContext(c.Context()).Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete fee")
	}
	return helper.JsonDeleted(c, "Fee deleted successfully", fiber.Map{"fee_id": id})
}

/* =======================================================================
   Checkout (Snap)
======================================================================= */

// POST /api/u/fees/:id/checkout
// Any actor who can see the fee may start a checkout for it.
func (ctrl *FeeController) Checkout(c *fiber.Ctx) error {
	m, err := ctrl.findScoped(c)
	if err != nil {
		return err
	}
	if m.FeeStatus == model.FeeStatusPaid {
		return helper.JsonError(c, fiber.StatusConflict, "Fee is already paid")
	}

	// reuse the pending checkout if one was already created
	if m.FeeExternalID != nil && m.FeeCheckoutURL != nil {
		return helper.JsonOK(c, "Checkout already in progress", dto.CheckoutResponse{
			FeeID:       m.FeeID,
			OrderID:     *m.FeeExternalID,
			RedirectURL: *m.FeeCheckoutURL,
		})
	}

	orderID := fmt.Sprintf("FEE-%s-%d", strings.Split(m.FeeID.String(), "-")[0], time.Now().Unix())
	m.FeeExternalID = &orderID

	payer := service.PayerInput{Email: strings.TrimSpace(c.Query("email"))}
	if name, ok := c.Locals("user_name").(string); ok {
		payer.FirstName = name
	}

	token, redirectURL, err := service.GenerateSnapToken(*m, payer)
	if err != nil {
		log.Println("[ERROR] midtrans snap:", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Failed to create payment transaction")
	}

	m.FeeCheckoutURL = &redirectURL
	if err := ctrl.DB.WithContext(c.Context()).Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store checkout reference")
	}

	return helper.JsonOK(c, "Checkout created successfully", dto.CheckoutResponse{
		FeeID:       m.FeeID,
		OrderID:     orderID,
		SnapToken:   token,
		RedirectURL: redirectURL,
	})
}

/* =======================================================================
   Webhook Midtrans
======================================================================= */

type midtransNotif struct {
	TransactionTime   string `json:"transaction_time"`
	TransactionStatus string `json:"transaction_status"` // capture, settlement, pending, deny, cancel, expire, refund, failure
	StatusCode        string `json:"status_code"`
	SignatureKey      string `json:"signature_key"`
	OrderID           string `json:"order_id"`
	GrossAmount       string `json:"gross_amount"`
	PaymentType       string `json:"payment_type"`
	FraudStatus       string `json:"fraud_status"` // accept / challenge / deny
	TransactionID     string `json:"transaction_id"`
	SettlementTime    string `json:"settlement_time"`
}

// POST /api/fees/payments/notification (no auth; signature-verified)
func (ctrl *FeeController) MidtransWebhook(c *fiber.Ctx) error {
	var notif midtransNotif
	if err := c.BodyParser(&notif); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload: "+err.Error())
	}

	// SHA512(order_id + status_code + gross_amount + ServerKey)
	want := strings.ToLower(notif.SignatureKey)
	raw := notif.OrderID + notif.StatusCode + notif.GrossAmount + ctrl.MidtransServerKey
	got := sha512sum(raw)
	if want == "" || got != want {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid signature")
	}

	var m model.FeeModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "fee_external_id = ?", notif.OrderID).Error; err != nil {
		// answer 200 so Midtrans stops retrying an order we never issued
		log.Printf("[WARN] midtrans notification for unknown order_id=%s", notif.OrderID)
		return c.JSON(fiber.Map{"status": "ignored", "reason": "fee not found"})
	}

	now := time.Now()
	switch notif.TransactionStatus {
	case "settlement":
		m.FeeStatus = model.FeeStatusPaid
		m.FeePaidAt = &now
	case "capture":
		if notif.FraudStatus == "accept" {
			m.FeeStatus = model.FeeStatusPaid
			m.FeePaidAt = &now
		}
	case "deny", "cancel", "expire", "failure":
		// back to billable; the overdue sweep reclassifies it later
		m.FeeStatus = model.FeeStatusPending
		m.FeeExternalID = nil
		m.FeeCheckoutURL = nil
	}

	if notif.TransactionID != "" {
		ref := notif.TransactionID
		m.FeeGatewayReference = &ref
	}
	if payload, err := json.Marshal(notif); err == nil {
		m.FeePaymentMeta = datatypes.JSON(payload)
	}

	if err := ctrl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "update fee failed: "+err.Error())
	}

	return c.JSON(fiber.Map{
		"status":             "ok",
		"fee_id":             m.FeeID,
		"fee_status":         m.FeeStatus,
		"transaction_status": notif.TransactionStatus,
	})
}

func sha512sum(s string) string {
	h := sha512.Sum512([]byte(s))
	return hex.EncodeToString(h[:])
}
