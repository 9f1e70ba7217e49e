package trainers

import (
	"net/http"

	"github.com/2beens/gymmanager/internal/api"
	"github.com/2beens/gymmanager/internal/db"
	"github.com/2beens/gymmanager/internal/gym"
	"github.com/2beens/gymmanager/internal/telemetry/tracing"
	"github.com/2beens/gymmanager/pkg"
)

type invoiceRequest struct {
	MemberID    *int64    `json:"member_id"`
	Amount      *float64  `json:"amount"`
	InvoiceDate *gym.Date `json:"invoice_date"`
	Status      *string   `json:"status"`
	Category    *string   `json:"category"`
}

type messageRequest struct {
	MemberID   *int64  `json:"member_id"`
	Content    *string `json:"content"`
	ReadStatus *string `json:"read_status"`
}

func (handler *Handler) handleInvoices(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainers.invoices")
	defer span.End()

	trainerID, err := api.PathID(r, "id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	invoices, err := handler.repo.Invoices(ctx, trainerID, api.QueryString(r, "status"))
	if err != nil {
		handler.errs.Write(w, err, msgTrainerNotFound)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, invoices)
}

func (handler *Handler) handleAddInvoice(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainers.invoices.add")
	defer span.End()

	trainerID, err := api.PathID(r, "id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	var req invoiceRequest
	body, err := api.DecodeBody(r, &req)
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}
	if missing := body.Missing("member_id", "amount", "invoice_date", "category"); missing != "" {
		handler.errs.MissingField(w, missing)
		return
	}

	status := gym.InvoiceStatus.Pending
	if req.Status != nil {
		status = *req.Status
	}
	if err := gym.ValidateStatus("status", status, gym.InvoiceStatuses); err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	id, err := handler.repo.AddInvoice(ctx, gym.Invoice{
		MemberID:    *req.MemberID,
		TrainerID:   trainerID,
		Amount:      *req.Amount,
		InvoiceDate: *req.InvoiceDate,
		Status:      status,
		Category:    *req.Category,
	})
	if err != nil {
		handler.errs.Write(w, err, msgTrainerNotFound)
		return
	}

	handler.metrics.EntityCreated("invoice")
	pkg.WriteJSONResponse(w, http.StatusCreated, gym.Created("Invoice created successfully", "invoice_id", id))
}

func (handler *Handler) handleUpdateInvoice(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainers.invoices.update")
	defer span.End()

	id, err := api.PathID(r, "id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	var req invoiceRequest
	body, err := api.DecodeBody(r, &req)
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}
	if req.Status != nil {
		if err := gym.ValidateStatus("status", *req.Status, gym.InvoiceStatuses); err != nil {
			handler.errs.BadRequest(w, err.Error())
			return
		}
	}

	changes := (&db.Changes{}).
		SetIf(body.Has("status"), "status", req.Status).
		SetIf(body.Has("amount"), "amount", req.Amount).
		SetIf(body.Has("category"), "category", req.Category)
	if changes.Empty() {
		handler.errs.BadRequest(w, api.MsgNoValidFields)
		return
	}

	if err := handler.repo.UpdateInvoice(ctx, id, changes); err != nil {
		handler.errs.Write(w, err, msgInvoiceNotFound)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, gym.MessageResponse{Message: "Invoice updated successfully"})
}

func (handler *Handler) handleVoidInvoice(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainers.invoices.void")
	defer span.End()

	id, err := api.PathID(r, "id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	if err := handler.repo.VoidInvoice(ctx, id); err != nil {
		handler.errs.Write(w, err, msgInvoiceNotFound)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, gym.MessageResponse{Message: "Invoice voided successfully"})
}

func (handler *Handler) handleMessages(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainers.messages")
	defer span.End()

	trainerID, err := api.PathID(r, "id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}
	memberID, err := api.QueryInt(r, "member_id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	messages, err := handler.repo.Messages(ctx, trainerID, memberID)
	if err != nil {
		handler.errs.Write(w, err, msgTrainerNotFound)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, messages)
}

func (handler *Handler) handleAddMessage(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainers.messages.add")
	defer span.End()

	trainerID, err := api.PathID(r, "id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	var req messageRequest
	body, err := api.DecodeBody(r, &req)
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}
	if missing := body.Missing("member_id", "content"); missing != "" {
		handler.errs.MissingField(w, missing)
		return
	}

	readStatus := gym.ReadStatus.Unread
	if req.ReadStatus != nil {
		readStatus = *req.ReadStatus
	}
	if err := gym.ValidateStatus("read_status", readStatus, gym.ReadStatuses); err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	id, err := handler.repo.AddMessage(ctx, gym.Message{
		MemberID:         *req.MemberID,
		TrainerID:        &trainerID,
		Content:          *req.Content,
		MessageTimestamp: gym.NewTimestamp(handler.now()),
		ReadStatus:       readStatus,
	})
	if err != nil {
		handler.errs.Write(w, err, msgTrainerNotFound)
		return
	}

	handler.metrics.EntityCreated("message")
	pkg.WriteJSONResponse(w, http.StatusCreated, gym.Created("Message sent successfully", "message_id", id))
}
