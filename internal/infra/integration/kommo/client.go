package kommo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/xavierca1/produtora-site/internal/logger"
	"github.com/xavierca1/produtora-site/internal/usecase"
)

const leadTag = "site"

// Client espelha cada lead do formulário no funil do Kommo: contato
// (reaproveitado pelo telefone) + lead + nota com o briefing.
type Client struct {
	apiToken   string
	baseURL    string
	statusID   int
	httpClient *http.Client
}

func NewClient(baseURL, apiToken string, statusID int) *Client {
	return &Client{
		apiToken:   apiToken,
		baseURL:    strings.TrimRight(baseURL, "/"),
		statusID:   statusID,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// NotifyLeadCreated satisfaz usecase.LeadNotifier.
func (c *Client) NotifyLeadCreated(ctx context.Context, n usecase.LeadNotification) error {
	if c.apiToken == "" {
		return fmt.Errorf("kommo não configurado")
	}

	contactID, err := c.findOrCreateContact(ctx, n)
	if err != nil {
		return fmt.Errorf("erro ao criar/buscar contato: %w", err)
	}

	leadID, err := c.createLead(ctx, n, contactID)
	if err != nil {
		return err
	}

	if err := c.addNote(ctx, leadID, briefing(n)); err != nil {
		return fmt.Errorf("lead #%d criado, mas a nota falhou: %w", leadID, err)
	}

	logger.Log.Info().Int("kommo_lead_id", leadID).Str("lead_id", n.LeadID).Msg("lead espelhado no Kommo")
	return nil
}

func leadName(n usecase.LeadNotification) string {
	project := n.ProjectType
	if project == "" {
		project = "Orçamento"
	}
	return fmt.Sprintf("%s - %s", n.Name, project)
}

func briefing(n usecase.LeadNotification) string {
	lines := []string{"Objetivo: " + n.Objective}
	if n.Company != "" {
		lines = append(lines, "Empresa: "+n.Company)
	}
	if n.Deadline != "" {
		lines = append(lines, "Prazo: "+n.Deadline)
	}
	return strings.Join(lines, "\n")
}

func (c *Client) createLead(ctx context.Context, n usecase.LeadNotification, contactID int) (int, error) {
	payload := []leadRequest{{
		Name:     leadName(n),
		StatusID: c.statusID,
		Embedded: leadEmbedded{
			Tags:     []tag{{Name: leadTag}},
			Contacts: []ref{{ID: contactID}},
		},
	}}

	var result embeddedIDs
	if err := c.do(ctx, http.MethodPost, "/leads", payload, &result); err != nil {
		return 0, fmt.Errorf("erro ao criar lead: %w", err)
	}
	if len(result.Embedded.Leads) == 0 {
		return 0, fmt.Errorf("lead não criado")
	}
	return result.Embedded.Leads[0].ID, nil
}

func (c *Client) findOrCreateContact(ctx context.Context, n usecase.LeadNotification) (int, error) {
	if id, err := c.findContactByPhone(ctx, n.WhatsApp); err == nil && id > 0 {
		return id, nil
	}
	return c.createContact(ctx, n)
}

func (c *Client) findContactByPhone(ctx context.Context, phone string) (int, error) {
	var result embeddedIDs
	if err := c.do(ctx, http.MethodGet, "/contacts?query="+url.QueryEscape(phone), nil, &result); err != nil {
		return 0, err
	}
	if len(result.Embedded.Contacts) > 0 {
		return result.Embedded.Contacts[0].ID, nil
	}
	return 0, fmt.Errorf("contato não encontrado")
}

func (c *Client) createContact(ctx context.Context, n usecase.LeadNotification) (int, error) {
	payload := []contactRequest{{
		Name: n.Name,
		CustomFields: []customField{
			{FieldCode: "PHONE", Values: []customFieldValue{{Value: n.WhatsApp, EnumCode: "WORK"}}},
			{FieldCode: "EMAIL", Values: []customFieldValue{{Value: n.Email, EnumCode: "WORK"}}},
		},
	}}

	var result embeddedIDs
	if err := c.do(ctx, http.MethodPost, "/contacts", payload, &result); err != nil {
		return 0, err
	}
	if len(result.Embedded.Contacts) == 0 {
		return 0, fmt.Errorf("erro ao obter ID do contato criado")
	}
	return result.Embedded.Contacts[0].ID, nil
}

func (c *Client) addNote(ctx context.Context, leadID int, text string) error {
	payload := []noteRequest{{EntityID: leadID, NoteType: "common", Params: noteParams{Text: text}}}
	return c.do(ctx, http.MethodPost, "/leads/notes", payload, nil)
}

// do envia JSON e decodifica a resposta em out (quando não nil). O Kommo
// responde 204 sem corpo para buscas vazias.
func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("kommo %s %s: %d - %s", method, path, resp.StatusCode, string(respBody))
	}
	if out == nil || len(respBody) == 0 {
		return nil
	}
	return json.Unmarshal(respBody, out)
}
