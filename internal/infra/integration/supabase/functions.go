package supabase

import (
	"context"
	"encoding/json"
	"fmt"

	functions "github.com/supabase-community/functions-go"

	"github.com/xavierca1/produtora-site/internal/usecase"
)

// FunctionNotifier delegates the lead e-mail to a hosted serverless function.
type FunctionNotifier struct {
	client *functions.Client
	name   string
}

func NewFunctionNotifier(functionsURL, anonKey, name string) *FunctionNotifier {
	return &FunctionNotifier{
		client: functions.NewClient(functionsURL, anonKey, nil),
		name:   name,
	}
}

func (f *FunctionNotifier) NotifyLeadCreated(ctx context.Context, n usecase.LeadNotification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	body, err := f.client.Invoke(f.name, n)
	if err != nil {
		return fmt.Errorf("invoke %s: %w", f.name, err)
	}

	var resp notificationResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		return fmt.Errorf("invoke %s: resposta inválida: %w", f.name, err)
	}
	if !resp.Success {
		return fmt.Errorf("invoke %s: %s", f.name, resp.Error)
	}
	return nil
}
