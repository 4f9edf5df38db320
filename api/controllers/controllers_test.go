package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/rewardplus/loyalty-console/pkg/logger"
	"github.com/rewardplus/loyalty-console/pkg/loyalty"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func serveWithParam(h http.HandlerFunc, method, target, param, value string, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	r := httptest.NewRequest(method, target, reader)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(param, value)
	r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	return rec
}

type stubPromotionService struct {
	created  *loyalty.CreatePromotionParams
	listed   bool
	existing []loyalty.Promotion
}

func (s *stubPromotionService) CreatePromotion(ctx context.Context, params loyalty.CreatePromotionParams) (*loyalty.Promotion, error) {
	s.created = &params
	return &loyalty.Promotion{ID: 9, Name: params.Name, Status: params.Status}, nil
}

func (s *stubPromotionService) ActivePromotions(ctx context.Context) ([]loyalty.Promotion, error) {
	s.listed = true
	return append(s.existing, loyalty.Promotion{ID: 9}), nil
}

func TestPromotionCreateRejectsMissingDateBeforeNetwork(t *testing.T) {
	svc := &stubPromotionService{}
	h := PromotionCreate(svc, testLogger())

	r := httptest.NewRequest("POST", "/v1/promotions", strings.NewReader(
		`{"name":"Double Points","promotionType":"BONUS_POINTS","startDate":"2024-06-01"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if svc.created != nil {
		t.Fatal("create must not be issued for an invalid form")
	}
	if !strings.Contains(rec.Body.String(), "endDate") {
		t.Fatalf("missing field not named: %s", rec.Body.String())
	}
}

func TestPromotionCreateRefetchesActiveList(t *testing.T) {
	svc := &stubPromotionService{}
	h := PromotionCreate(svc, testLogger())

	r := httptest.NewRequest("POST", "/v1/promotions", strings.NewReader(
		`{"name":"Double Points","promotionType":"BONUS_POINTS","startDate":"2024-06-01","endDate":"2024-06-30"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if svc.created == nil || !svc.listed {
		t.Fatal("expected create followed by list refetch")
	}
	if svc.created.Status != loyalty.PromotionDraft {
		t.Fatalf("default status = %q", svc.created.Status)
	}
}

type stubTransactionService struct {
	created    *loyalty.CreateTransactionParams
	listCalled bool
}

func (s *stubTransactionService) CreateTransaction(ctx context.Context, customerID int64, params loyalty.CreateTransactionParams) (*loyalty.Transaction, error) {
	s.created = &params
	return &loyalty.Transaction{ID: 1, CustomerID: customerID, Amount: params.Amount}, nil
}

func (s *stubTransactionService) ListCustomerTransactions(ctx context.Context, customerID int64, page, size int) ([]loyalty.Transaction, *loyalty.Pagination, error) {
	s.listCalled = true
	return []loyalty.Transaction{{ID: 1, CustomerID: customerID}}, nil, nil
}

func TestTransactionCreateRejectsNonPositiveAmount(t *testing.T) {
	svc := &stubTransactionService{}
	h := TransactionCreate(svc, testLogger(), 20)

	rec := serveWithParam(h, "POST", "/v1/customers/7/transactions", "customerId", "7",
		`{"amount":0,"description":"refund"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if svc.created != nil {
		t.Fatal("create must not be issued for a non-positive amount")
	}
}

func TestTransactionCreateRefetchesLedger(t *testing.T) {
	svc := &stubTransactionService{}
	h := TransactionCreate(svc, testLogger(), 20)

	rec := serveWithParam(h, "POST", "/v1/customers/7/transactions", "customerId", "7",
		`{"amount":54.20,"description":"Grocery run"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if svc.created == nil || !svc.listCalled {
		t.Fatal("expected create followed by ledger refetch")
	}
	if !svc.created.Amount.Equal(decimal.NewFromFloat(54.20)) {
		t.Fatalf("amount = %s", svc.created.Amount)
	}
}

type stubCustomerService struct {
	enrolled *loyalty.EnrollCustomerParams
}

func (s *stubCustomerService) GetCustomer(ctx context.Context, id int64) (*loyalty.Customer, error) {
	return &loyalty.Customer{ID: id, FirstName: "Ada"}, nil
}

func (s *stubCustomerService) EnrollCustomer(ctx context.Context, params loyalty.EnrollCustomerParams) (*loyalty.Customer, error) {
	s.enrolled = &params
	return &loyalty.Customer{ID: 42, FirstName: params.FirstName}, nil
}

func TestCustomerEnrollValidatesForm(t *testing.T) {
	svc := &stubCustomerService{}
	h := CustomerEnroll(svc, testLogger())

	r := httptest.NewRequest("POST", "/v1/customers", strings.NewReader(`{"firstName":"Ada"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if svc.enrolled != nil {
		t.Fatal("enroll must not be issued for an invalid form")
	}
}

func TestCustomerEnrollCreates(t *testing.T) {
	svc := &stubCustomerService{}
	h := CustomerEnroll(svc, testLogger())

	r := httptest.NewRequest("POST", "/v1/customers", strings.NewReader(
		`{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","dateOfBirth":"1990-12-10"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Data loyalty.Customer `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Data.ID != 42 {
		t.Fatalf("unexpected customer: %+v", envelope.Data)
	}
}

func TestCustomerGetParsesPathID(t *testing.T) {
	svc := &stubCustomerService{}

	rec := serveWithParam(CustomerGet(svc, testLogger()), "GET", "/v1/customers/7", "customerId", "7", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	rec = serveWithParam(CustomerGet(svc, testLogger()), "GET", "/v1/customers/abc", "customerId", "abc", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

type stubRewardService struct {
	redeemed bool
	points   bool
}

func (s *stubRewardService) RedeemReward(ctx context.Context, customerID, rewardID int64) (*loyalty.Redemption, error) {
	s.redeemed = true
	return &loyalty.Redemption{ID: 1, CustomerID: customerID, RewardID: rewardID}, nil
}

func (s *stubRewardService) GetPointsSummary(ctx context.Context, id int64) (*loyalty.PointsSummary, error) {
	s.points = true
	return &loyalty.PointsSummary{CustomerID: id, CurrentBalance: 500}, nil
}

func (s *stubRewardService) AvailableRewards(ctx context.Context) ([]loyalty.Reward, error) {
	return []loyalty.Reward{{ID: 1}}, nil
}

func TestRewardRedeemRefreshesBalance(t *testing.T) {
	svc := &stubRewardService{}
	h := RewardRedeem(svc, testLogger())

	r := httptest.NewRequest("POST", "/v1/rewards/redeem", strings.NewReader(`{"customerId":7,"rewardId":3}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if !svc.redeemed || !svc.points {
		t.Fatal("expected redeem followed by points refetch")
	}
}

func TestRewardRedeemValidatesIDs(t *testing.T) {
	svc := &stubRewardService{}
	h := RewardRedeem(svc, testLogger())

	r := httptest.NewRequest("POST", "/v1/rewards/redeem", strings.NewReader(`{"customerId":7}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if svc.redeemed {
		t.Fatal("redeem must not be issued without a reward id")
	}
}
