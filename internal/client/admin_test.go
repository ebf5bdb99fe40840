package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/shopspring/decimal"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/ZEBDA1/McHess/internal"
	"github.com/ZEBDA1/McHess/internal/client"
	"github.com/ZEBDA1/McHess/internal/model"
)

// fakeBackend is an in-memory stand-in for the shop server with just enough
// behavior for the admin workflow: placeholder login, pack and order lists,
// CAS transitions and pack updates.
type fakeBackend struct {
	mu         sync.Mutex
	packs      []model.Pack
	orders     []model.Order
	failOrders bool
	requests   int64
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		packs: []model.Pack{
			{ID: "p1", Name: "Starter", Description: "Parfait pour commencer", PointsRange: "25-50", Price: decimal.NewFromFloat(4.99)},
			{ID: "p2", Name: "Ultra", Description: "Le maximum de points", PointsRange: "100-150", Price: decimal.NewFromFloat(17.99)},
		},
		orders: []model.Order{
			{ID: "o1", PackID: "p1", PackName: "Starter", CustomerEmail: "alice@x.com", Amount: decimal.NewFromFloat(4.99), Status: model.OrderStatusPending},
			{ID: "o2", PackID: "p2", PackName: "Ultra", CustomerEmail: "bob@y.com", Amount: decimal.NewFromFloat(17.99), Status: model.OrderStatusDelivered, DeliveryInfo: "code"},
		},
	}
}

func (f *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	atomic.AddInt64(&f.requests, 1)
	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case r.URL.Path == "/api/admin/login":
		var creds struct{ Login, Password string }
		_ = json.NewDecoder(r.Body).Decode(&creds)
		if creds.Login != "admin" || creds.Password != "admin123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"token":"session-token"}`))

	case r.URL.Path == "/api/packs":
		_ = json.NewEncoder(w).Encode(f.packs)

	case r.Header.Get("Authorization") != "Bearer session-token":
		w.WriteHeader(http.StatusUnauthorized)

	case r.URL.Path == "/api/admin/orders":
		if f.failOrders {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(f.orders)

	case strings.HasSuffix(r.URL.Path, "/deliver"):
		id := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/api/admin/orders/"), "/deliver")
		var i model.DeliverInput
		_ = json.NewDecoder(r.Body).Decode(&i)
		f.transition(w, id, model.OrderStatusDelivered, i.DeliveryInfo)

	case strings.HasPrefix(r.URL.Path, "/api/admin/orders/"):
		id := strings.TrimPrefix(r.URL.Path, "/api/admin/orders/")
		var i model.StatusInput
		_ = json.NewDecoder(r.Body).Decode(&i)
		f.transition(w, id, i.Status, "")

	case strings.HasPrefix(r.URL.Path, "/api/admin/packs/"):
		id := strings.TrimPrefix(r.URL.Path, "/api/admin/packs/")
		var i model.PackInput
		_ = json.NewDecoder(r.Body).Decode(&i)
		for n, p := range f.packs {
			if p.ID == id {
				f.packs[n] = model.Pack{ID: id, Name: i.Name, Description: i.Description, PointsRange: i.PointsRange, Price: i.Price}
				_ = json.NewEncoder(w).Encode(f.packs[n])
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (f *fakeBackend) transition(w http.ResponseWriter, id, status, deliveryInfo string) {
	for n, o := range f.orders {
		if o.ID != id {
			continue
		}
		if o.Status != model.OrderStatusPending {
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"error":"order already left pending state"}`))
			return
		}
		f.orders[n].Status = status
		f.orders[n].DeliveryInfo = deliveryInfo
		_, _ = w.Write([]byte(`{"message":"ok"}`))
		return
	}
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte(`{"error":"order not found"}`))
}

var _ = Describe("AdminSession", func() {
	var (
		backend *fakeBackend
		server  *httptest.Server
		session *client.AdminSession
	)
	BeforeEach(func() {
		backend = newFakeBackend()
		server = httptest.NewServer(backend)
		session = client.NewAdminSession(client.NewAPI(server.URL))
	})
	AfterEach(func() {
		server.Close()
	})

	login := func() {
		Expect(session.Login(context.Background(), "admin", "admin123")).Should(Succeed())
		Expect(session.Refresh(context.Background())).Should(Succeed())
	}

	Context("Session gate", func() {
		It("blocks every screen without a session token", func() {
			err := session.Refresh(context.Background())
			Expect(err).Should(Equal(internal.ErrNoSession))
			Expect(atomic.LoadInt64(&backend.requests)).Should(BeZero())
		})
		It("rejects wrong credentials", func() {
			err := session.Login(context.Background(), "admin", "wrong")
			Expect(err).Should(Equal(internal.ErrInvalidCredentials))
			Expect(session.Authenticated()).Should(BeFalse())
		})
		It("clears the token and held data on logout", func() {
			login()
			Expect(session.Orders()).ShouldNot(BeEmpty())

			session.Logout()
			Expect(session.Authenticated()).Should(BeFalse())
			Expect(session.Orders()).Should(BeEmpty())
			Expect(session.Refresh(context.Background())).Should(Equal(internal.ErrNoSession))
		})
	})

	Context("Data refresh and stats", func() {
		It("loads packs and orders together", func() {
			login()

			Expect(session.Packs()).Should(HaveLen(2))
			Expect(session.Orders()).Should(HaveLen(2))

			stats := session.Stats()
			Expect(stats.TotalOrders).Should(Equal(2))
			Expect(stats.PendingOrders).Should(Equal(1))
			Expect(stats.DeliveredOrders).Should(Equal(1))
			Expect(stats.TotalRevenue.String()).Should(Equal("17.99"))
		})
		It("keeps the previous view when one of the two fetches fails", func() {
			login()

			backend.mu.Lock()
			backend.failOrders = true
			backend.mu.Unlock()

			err := session.Refresh(context.Background())
			Expect(err).Should(HaveOccurred())
			Expect(session.Orders()).Should(HaveLen(2))
			Expect(session.Packs()).Should(HaveLen(2))
		})
		It("searches delivered orders of one customer case-insensitively", func() {
			login()

			found, count := session.SearchOrders("BOB@Y.COM", model.OrderStatusDelivered)
			Expect(count).Should(Equal(1))
			Expect(found[0].ID).Should(Equal("o2"))
		})
	})

	Context("Order actions", func() {
		It("delivers a pending order and re-runs the full refresh", func() {
			login()

			Expect(session.Deliver(context.Background(), "o1", "code: WXYZ")).Should(Succeed())

			stats := session.Stats()
			Expect(stats.PendingOrders).Should(BeZero())
			Expect(stats.DeliveredOrders).Should(Equal(2))
			Expect(stats.TotalRevenue.String()).Should(Equal("22.98"))
		})
		It("cancels a pending order", func() {
			login()

			Expect(session.Cancel(context.Background(), "o1")).Should(Succeed())

			stats := session.Stats()
			Expect(stats.CancelledOrders).Should(Equal(1))
			Expect(stats.TotalRevenue.String()).Should(Equal("17.99"))
		})
		It("refuses actions on orders that already left pending", func() {
			login()
			before := atomic.LoadInt64(&backend.requests)

			err := session.Deliver(context.Background(), "o2", "again")
			Expect(err).Should(Equal(internal.ErrOrderFinalized))
			Expect(atomic.LoadInt64(&backend.requests)).Should(Equal(before))
		})
		It("requires delivery info before the network call", func() {
			login()
			before := atomic.LoadInt64(&backend.requests)

			err := session.Deliver(context.Background(), "o1", "   ")
			Expect(err).Should(Equal(internal.ErrEmptyDeliveryInfo))
			Expect(atomic.LoadInt64(&backend.requests)).Should(Equal(before))
		})
	})

	Context("Pack edits", func() {
		It("saves a valid edit and refreshes the catalog", func() {
			login()

			i := model.PackInput{
				Name:        "Starter Plus",
				Description: "Parfait pour commencer",
				PointsRange: "30-60",
				Price:       decimal.NewFromFloat(5.99),
			}
			Expect(session.SavePack(context.Background(), "p1", i)).Should(Succeed())

			for _, p := range session.Packs() {
				if p.ID == "p1" {
					Expect(p.Name).Should(Equal("Starter Plus"))
					Expect(p.PointsRange).Should(Equal("30-60"))
				}
			}
		})
		It("never sends an invalid edit to the network", func() {
			login()
			before := atomic.LoadInt64(&backend.requests)

			i := model.PackInput{
				Name:        "Starter",
				Description: "Parfait pour commencer",
				PointsRange: "50",
				Price:       decimal.NewFromFloat(4.99),
			}
			err := session.SavePack(context.Background(), "p1", i)
			Expect(err).Should(Equal(internal.ErrInvalidPointsRange))
			Expect(atomic.LoadInt64(&backend.requests)).Should(Equal(before))
		})
	})
})
