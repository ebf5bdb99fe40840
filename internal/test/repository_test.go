package test

import (
	"context"
	"errors"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/ZEBDA1/McHess/internal"
	"github.com/ZEBDA1/McHess/internal/model"
)

var _ = Describe("Repository", func() {
	var (
		repo internal.IRepository
		mock sqlmock.Sqlmock
	)
	BeforeEach(func() {
		db, m, err := sqlmock.New()
		Expect(err).ShouldNot(HaveOccurred())

		mock = m
		logger, err := zap.NewDevelopment()
		Expect(err).ShouldNot(HaveOccurred())

		repo = internal.Repository{
			Conn:   db,
			Logger: logger.Sugar(),
		}
	})
	AfterEach(func() {
		err := mock.ExpectationsWereMet()
		Expect(err).ShouldNot(HaveOccurred())
	})
	Context("Repository tests", func() {
		It("GetPacks without error", func() {
			expectedRows := sqlmock.NewRows([]string{
				"ID",
				"Name",
				"Description",
				"PointsRange",
				"Price",
			}).AddRow("p1", "Starter", "Parfait pour commencer", "25-50", decimal.NewFromFloat(4.99))

			mock.ExpectQuery("SELECT (.+) FROM packs ORDER BY price ASC").
				WillReturnRows(expectedRows).RowsWillBeClosed()

			packs, err := repo.GetPacks(context.Background())
			Expect(err).ShouldNot(HaveOccurred())
			Expect(packs).Should(HaveLen(1))
			Expect(packs[0].Name).Should(Equal("Starter"))
		})
		It("GetPackByID with unknown id", func() {
			mock.ExpectQuery("SELECT (.+) FROM packs WHERE id = \\$1").
				WithArgs("missing").WillReturnRows(sqlmock.NewRows([]string{"ID", "Name", "Description", "PointsRange", "Price"}))

			_, err := repo.GetPackByID(context.Background(), "missing")
			Expect(err).Should(HaveOccurred())
			Expect(err).Should(Equal(internal.ErrPackNotFound))
		})
		It("UpdatePack without error", func() {
			i := model.PackInput{
				Name:        "Starter",
				Description: "Parfait pour commencer",
				PointsRange: "25-50",
				Price:       decimal.NewFromFloat(5.99),
			}

			mock.ExpectExec("UPDATE packs SET name = \\$1, description = \\$2, points_range = \\$3, price = \\$4 WHERE id = \\$5").
				WithArgs(i.Name, i.Description, i.PointsRange, i.Price, "p1").
				WillReturnResult(sqlmock.NewResult(0, 1))

			pack, err := repo.UpdatePack(context.Background(), "p1", i)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(pack.Price).Should(Equal(i.Price))
		})
		It("UpdatePack with unknown id", func() {
			i := model.PackInput{
				Name:        "Starter",
				Description: "Parfait pour commencer",
				PointsRange: "25-50",
				Price:       decimal.NewFromFloat(5.99),
			}

			mock.ExpectExec("UPDATE packs SET (.+) WHERE id = \\$5").
				WithArgs(i.Name, i.Description, i.PointsRange, i.Price, "missing").
				WillReturnResult(sqlmock.NewResult(0, 0))

			_, err := repo.UpdatePack(context.Background(), "missing", i)
			Expect(err).Should(HaveOccurred())
			Expect(err).Should(Equal(internal.ErrPackNotFound))
		})
		It("CreateOrder without error", func() {
			o := model.Order{
				ID:            "deadbeefab12cd34",
				PackID:        "p1",
				PackName:      "Starter",
				CustomerEmail: "a@x.com",
				Amount:        decimal.NewFromFloat(4.99),
				Status:        model.OrderStatusPending,
				CreatedAt:     time.Now(),
			}

			mock.ExpectExec("INSERT INTO orders (.+) VALUES (.+)").
				WithArgs(o.ID, o.PackID, o.PackName, o.CustomerEmail, o.Amount, o.Status, o.CreatedAt).
				WillReturnResult(sqlmock.NewResult(0, 1))

			err := repo.CreateOrder(context.Background(), o)
			Expect(err).ShouldNot(HaveOccurred())
		})
		It("CreateOrder with error", func() {
			o := model.Order{ID: "o1"}

			mock.ExpectExec("INSERT INTO orders (.+) VALUES (.+)").
				WillReturnError(errors.New("some error"))

			err := repo.CreateOrder(context.Background(), o)
			Expect(err).Should(HaveOccurred())
		})
		It("GetOrders without error", func() {
			t := time.Now()

			expectedRows := sqlmock.NewRows([]string{
				"ID",
				"PackID",
				"PackName",
				"CustomerEmail",
				"Amount",
				"Status",
				"DeliveryInfo",
				"CreatedAt",
			}).AddRow("o1", "p1", "Starter", "a@x.com", decimal.NewFromFloat(4.99), model.OrderStatusPending, "", t)

			mock.ExpectQuery("SELECT (.+) FROM orders ORDER BY created_at DESC").
				WillReturnRows(expectedRows).RowsWillBeClosed()

			orders, err := repo.GetOrders(context.Background())
			Expect(err).ShouldNot(HaveOccurred())
			Expect(orders).Should(HaveLen(1))
		})
		It("GetOrdersByEmail without error", func() {
			t := time.Now()

			expectedRows := sqlmock.NewRows([]string{
				"ID",
				"PackID",
				"PackName",
				"CustomerEmail",
				"Amount",
				"Status",
				"DeliveryInfo",
				"CreatedAt",
			}).AddRow("o1", "p1", "Starter", "a@x.com", decimal.NewFromFloat(4.99), model.OrderStatusDelivered, "code", t)

			mock.ExpectQuery("SELECT (.+) FROM orders WHERE customer_email = \\$1 ORDER BY created_at DESC").
				WithArgs("a@x.com").WillReturnRows(expectedRows).RowsWillBeClosed()

			orders, err := repo.GetOrdersByEmail(context.Background(), "a@x.com")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(orders).Should(HaveLen(1))
			Expect(orders[0].DeliveryInfo).Should(Equal("code"))
		})
		It("SetOrderStatus succeeds while the order is pending", func() {
			mock.ExpectExec("UPDATE orders SET status = \\$1 WHERE id = \\$2 AND status = \\$3").
				WithArgs(model.OrderStatusDelivered, "o1", model.OrderStatusPending).
				WillReturnResult(sqlmock.NewResult(0, 1))

			err := repo.SetOrderStatus(context.Background(), "o1", model.OrderStatusDelivered)
			Expect(err).ShouldNot(HaveOccurred())
		})
		It("SetOrderStatus on a finalized order", func() {
			mock.ExpectExec("UPDATE orders SET status = \\$1 WHERE id = \\$2 AND status = \\$3").
				WithArgs(model.OrderStatusCancelled, "o1", model.OrderStatusPending).
				WillReturnResult(sqlmock.NewResult(0, 0))

			mock.ExpectQuery("SELECT EXISTS").
				WithArgs("o1").
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

			err := repo.SetOrderStatus(context.Background(), "o1", model.OrderStatusCancelled)
			Expect(err).Should(HaveOccurred())
			Expect(err).Should(Equal(internal.ErrOrderFinalized))
		})
		It("SetOrderStatus with unknown order", func() {
			mock.ExpectExec("UPDATE orders SET status = \\$1 WHERE id = \\$2 AND status = \\$3").
				WithArgs(model.OrderStatusCancelled, "missing", model.OrderStatusPending).
				WillReturnResult(sqlmock.NewResult(0, 0))

			mock.ExpectQuery("SELECT EXISTS").
				WithArgs("missing").
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

			err := repo.SetOrderStatus(context.Background(), "missing", model.OrderStatusCancelled)
			Expect(err).Should(HaveOccurred())
			Expect(err).Should(Equal(internal.ErrOrderNotFound))
		})
		It("racing transitions let exactly one writer win", func() {
			// deliver lands first and flips the row
			mock.ExpectExec("UPDATE orders SET status = \\$1 WHERE id = \\$2 AND status = \\$3").
				WithArgs(model.OrderStatusDelivered, "o1", model.OrderStatusPending).
				WillReturnResult(sqlmock.NewResult(0, 1))

			// the cancel that lost the race sees zero affected rows
			mock.ExpectExec("UPDATE orders SET status = \\$1 WHERE id = \\$2 AND status = \\$3").
				WithArgs(model.OrderStatusCancelled, "o1", model.OrderStatusPending).
				WillReturnResult(sqlmock.NewResult(0, 0))

			mock.ExpectQuery("SELECT EXISTS").
				WithArgs("o1").
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

			err := repo.SetOrderStatus(context.Background(), "o1", model.OrderStatusDelivered)
			Expect(err).ShouldNot(HaveOccurred())

			err = repo.SetOrderStatus(context.Background(), "o1", model.OrderStatusCancelled)
			Expect(err).Should(HaveOccurred())
			Expect(err).Should(Equal(internal.ErrOrderFinalized))
		})
		It("DeliverOrder persists the delivery info with the transition", func() {
			mock.ExpectExec("UPDATE orders SET status = \\$1, delivery_info = \\$2 WHERE id = \\$3 AND status = \\$4").
				WithArgs(model.OrderStatusDelivered, "code: ABCD", "o1", model.OrderStatusPending).
				WillReturnResult(sqlmock.NewResult(0, 1))

			err := repo.DeliverOrder(context.Background(), "o1", "code: ABCD")
			Expect(err).ShouldNot(HaveOccurred())
		})
		It("GetOrderByID with unknown order", func() {
			mock.ExpectQuery("SELECT (.+) FROM orders WHERE id = \\$1").
				WithArgs("missing").
				WillReturnRows(sqlmock.NewRows([]string{"ID", "PackID", "PackName", "CustomerEmail", "Amount", "Status", "DeliveryInfo", "CreatedAt"}))

			_, err := repo.GetOrderByID(context.Background(), "missing")
			Expect(err).Should(HaveOccurred())
			Expect(err).Should(Equal(internal.ErrOrderNotFound))
		})
	})
})
