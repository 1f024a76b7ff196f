package utils

import (
	"encoding/json"
	"fmt"

	"microlearn/config"
	"microlearn/models"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// WatiProxyParams carries the caller-supplied parameters forwarded to the
// WATI API. The bearer credential is attached server-side and never
// accepted from the request.
type WatiProxyParams struct {
	PhoneNumber  string            `json:"phoneNumber"`
	TemplateName string            `json:"templateName"`
	Parameters   map[string]string `json:"parameters"`
	StartDate    string            `json:"startDate"`
	EndDate      string            `json:"endDate"`
}

func watiClient() *resty.Client {
	return resty.New().
		SetBaseURL(config.AppConfig.WatiApiURL).
		SetAuthToken(config.AppConfig.WatiApiKey)
}

// WatiProxy forwards a named endpoint call to the WATI API and returns the
// upstream status code and raw body. Unknown endpoint names are rejected
// before any network call.
func WatiProxy(endpoint string, params WatiProxyParams) (int, []byte, error) {
	client := watiClient()

	var resp *resty.Response
	var err error

	switch endpoint {
	case "getMessageTemplates":
		resp, err = client.R().Get("/getMessageTemplates")
	case "getContacts":
		resp, err = client.R().Get("/getContacts")
	case "sendTemplateMessage":
		body := map[string]interface{}{
			"template_name":  params.TemplateName,
			"broadcast_name": params.TemplateName,
			"parameters":     templateParameters(params.Parameters),
		}
		resp, err = client.R().
			SetQueryParam("whatsappNumber", params.PhoneNumber).
			SetBody(body).
			Post("/sendTemplateMessage")
	case "analytics":
		resp, err = client.R().
			SetQueryParams(map[string]string{
				"startDate": params.StartDate,
				"endDate":   params.EndDate,
			}).
			Get("/getAnalytics")
	case "getMessages":
		resp, err = client.R().Get("/getMessages/" + params.PhoneNumber)
	default:
		return 0, nil, errors.Wrap(ErrInvalidID, "unknown WATI endpoint "+endpoint)
	}

	if err != nil {
		return 0, nil, errors.Wrap(err, "WATI request failed")
	}
	return resp.StatusCode(), resp.Body(), nil
}

func templateParameters(params map[string]string) []map[string]string {
	out := make([]map[string]string, 0, len(params))
	for name, value := range params {
		out = append(out, map[string]string{"name": name, "value": value})
	}
	return out
}

// FetchWatiTemplates pulls the full template list from WATI and maps it to
// cache rows, extracting positional placeholders from each body.
func FetchWatiTemplates() ([]models.WhatsAppTemplate, error) {
	status, body, err := WatiProxy("getMessageTemplates", WatiProxyParams{})
	if err != nil {
		return nil, err
	}
	if status != 200 {
		return nil, fmt.Errorf("WATI template listing failed with status %d: %s", status, string(body))
	}

	var payload struct {
		MessageTemplates []struct {
			ElementName string `json:"elementName"`
			Body        string `json:"body"`
			Status      string `json:"status"`
		} `json:"messageTemplates"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errors.Wrap(err, "invalid WATI template response")
	}

	templates := make([]models.WhatsAppTemplate, 0, len(payload.MessageTemplates))
	for _, t := range payload.MessageTemplates {
		templates = append(templates, models.WhatsAppTemplate{
			Name:      t.ElementName,
			Content:   t.Body,
			Variables: JoinVariables(ExtractTemplateVariables(t.Body)),
			Status:    t.Status,
		})
	}
	return templates, nil
}

// FetchWatiContacts pulls the full contact list from WATI and maps it to
// cache rows.
func FetchWatiContacts() ([]models.WhatsAppContact, error) {
	status, body, err := WatiProxy("getContacts", WatiProxyParams{})
	if err != nil {
		return nil, err
	}
	if status != 200 {
		return nil, fmt.Errorf("WATI contact listing failed with status %d: %s", status, string(body))
	}

	var payload struct {
		ContactList []struct {
			WAID     string `json:"wAid"`
			FullName string `json:"fullName"`
			Phone    string `json:"phone"`
		} `json:"contact_list"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errors.Wrap(err, "invalid WATI contact response")
	}

	contacts := make([]models.WhatsAppContact, 0, len(payload.ContactList))
	for _, c := range payload.ContactList {
		contacts = append(contacts, models.WhatsAppContact{
			WAID:  c.WAID,
			Name:  c.FullName,
			Phone: c.Phone,
		})
	}
	return contacts, nil
}
