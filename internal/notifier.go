package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/ZEBDA1/McHess/internal/model"
)

// INotifier pushes order events to the shop operator. Notifications are
// best-effort: a failed send never fails the order operation that caused it.
type INotifier interface {
	OrderCreated(context.Context, model.Order)
	OrderStatusChanged(context.Context, model.Order)
}

type TelegramNotifier struct {
	token  string
	chatID string
	client *http.Client
	logger *zap.SugaredLogger
}

func NewTelegramNotifier(token, chatID string, logger *zap.SugaredLogger) *TelegramNotifier {
	return &TelegramNotifier{
		token:  token,
		chatID: chatID,
		client: &http.Client{Timeout: 10 * time.Second},
		logger: logger,
	}
}

func (n TelegramNotifier) OrderCreated(ctx context.Context, o model.Order) {
	msg := fmt.Sprintf("Nouvelle commande\nPack: %s\nMontant: %s€\nClient: %s\nN°: %s\nStatut: en attente",
		o.PackName, o.Amount.StringFixed(2), o.CustomerEmail, OrderNumber(o.ID))
	n.send(ctx, msg)
}

func (n TelegramNotifier) OrderStatusChanged(ctx context.Context, o model.Order) {
	msg := fmt.Sprintf("Mise à jour commande\nN°: %s\nClient: %s\nPack: %s\nNouveau statut: %s",
		OrderNumber(o.ID), o.CustomerEmail, o.PackName, o.Status)
	n.send(ctx, msg)
}

func (n TelegramNotifier) send(ctx context.Context, text string) {
	if n.token == "" || n.chatID == "" {
		n.logger.Infof("telegram notification (not configured): %s", text)
		return
	}

	payload, err := json.Marshal(map[string]string{
		"chat_id": n.chatID,
		"text":    text,
	})
	if err != nil {
		n.logger.Errorf("telegram notification error: %s", err.Error())
		return
	}

	url := "https://api.telegram.org/bot" + n.token + "/sendMessage"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		n.logger.Errorf("telegram notification error: %s", err.Error())
		return
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := n.client.Do(req)
	if err != nil {
		n.logger.Errorf("telegram notification error: %s", err.Error())
		return
	}
	defer res.Body.Close()
	_, _ = io.Copy(io.Discard, res.Body)

	if res.StatusCode != http.StatusOK {
		n.logger.Errorf("telegram notification error: status %d", res.StatusCode)
	}
}
