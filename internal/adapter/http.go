package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/MKhiriev/salestrak-pa/internal/config"
	"github.com/MKhiriev/salestrak-pa/internal/logger"
	"github.com/MKhiriev/salestrak-pa/internal/utils"
	"github.com/MKhiriev/salestrak-pa/models"
	"github.com/go-resty/resty/v2"
)

// maxErrorBody bounds how much of a failed download body is read for the
// error message.
const maxErrorBody = 64 << 10

type httpServerAdapter struct {
	client  *utils.HTTPClient
	baseURL *url.URL

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying credentialed HTTP client with the resolved base
// URL and request timeout. Every request and response is logged at debug
// level with its request ID.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}
	parsed, _ := url.Parse(baseURL)

	client := utils.NewHTTPClient(adapterCfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	h := &httpServerAdapter{client: client, baseURL: parsed, logger: logger}

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		h.logger.Debug().
			Str("request_id", resp.Request.Header.Get(utils.RequestIDHeader)).
			Str("method", resp.Request.Method).
			Str("path", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Dur("duration", resp.Time()).
			Msg("backend response")
		return nil
	})
	client.OnError(func(req *resty.Request, err error) {
		h.logger.Err(err).
			Str("request_id", req.Header.Get(utils.RequestIDHeader)).
			Str("method", req.Method).
			Str("path", req.URL).
			Msg("backend request failed")
	})

	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// BaseURL implements [ServerAdapter].
func (h *httpServerAdapter) BaseURL() string {
	return h.baseURL.String()
}

// Cookies implements [ServerAdapter]. It returns the cookies the jar would
// send to the backend base URL.
func (h *httpServerAdapter) Cookies() []*http.Cookie {
	return h.client.Jar().Cookies(h.baseURL)
}

// SetCookies implements [ServerAdapter]. The jar is reset first, so passing
// nil drops the session.
func (h *httpServerAdapter) SetCookies(cookies []*http.Cookie) {
	h.client.ResetJar()
	if len(cookies) > 0 {
		h.client.Jar().SetCookies(h.baseURL, cookies)
	}
}

// Me implements [ServerAdapter]. It GETs /me and unwraps the "user" envelope.
func (h *httpServerAdapter) Me(ctx context.Context) (*models.User, error) {
	var me models.MeResponse

	resp, err := h.request(ctx).Get("/me")
	if err != nil {
		return nil, networkError("me", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if err = decodeJSON("me", resp, &me); err != nil {
		return nil, err
	}
	return me.User, nil
}

// Logout implements [ServerAdapter]. It POSTs /logOut.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.request(ctx).Post("/logOut")
	if err != nil {
		return networkError("logout", err)
	}

	return mapHTTPError(resp)
}

// Login implements [ServerAdapter]. It POSTs the credentials to /login; the
// session cookie set by the server lands in the client jar.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.MessageResponse, error) {
	return h.postMessage(ctx, "login", "/login", req)
}

// Register implements [ServerAdapter]. It POSTs the new account to /register.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.MessageResponse, error) {
	return h.postMessage(ctx, "register", "/register", req)
}

// ResetPassword implements [ServerAdapter]. It POSTs the new password to
// /forgotPassword.
func (h *httpServerAdapter) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (models.MessageResponse, error) {
	return h.postMessage(ctx, "reset password", "/forgotPassword", req)
}

func (h *httpServerAdapter) postMessage(ctx context.Context, op, path string, body any) (models.MessageResponse, error) {
	var result models.MessageResponse

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		return result, networkError(op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result, err
	}

	return result, decodeJSON(op, resp, &result)
}

// GetHeaders implements [ServerAdapter]. It GETs /Header.
func (h *httpServerAdapter) GetHeaders(ctx context.Context) ([]models.Header, error) {
	var headers []models.Header
	if err := h.getJSON(ctx, "get headers", "/Header", &headers); err != nil {
		return nil, err
	}
	return headers, nil
}

// AddHeader implements [ServerAdapter]. It POSTs the name to /addHeader and
// returns the created header. A duplicate name comes back as [ErrConflict].
func (h *httpServerAdapter) AddHeader(ctx context.Context, name string) (models.Header, error) {
	var created models.HeaderCreated

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.HeaderRequest{Name: name}).
		Post("/addHeader")
	if err != nil {
		return models.Header{}, networkError("add header", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Header{}, err
	}

	if err = decodeJSON("add header", resp, &created); err != nil {
		return models.Header{}, err
	}
	return created.Header, nil
}

// GetAllItems implements [ServerAdapter]. It GETs /getAllItemData.
func (h *httpServerAdapter) GetAllItems(ctx context.Context) ([]models.HeaderGroup, error) {
	var groups []models.HeaderGroup
	if err := h.getJSON(ctx, "get all items", "/getAllItemData", &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// UpsertItem implements [ServerAdapter]. It POSTs the item to /addItems and
// returns the identifiers the server assigned or kept.
func (h *httpServerAdapter) UpsertItem(ctx context.Context, req models.ItemUpsertRequest) (models.ItemSaved, error) {
	var saved models.ItemSaved

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/addItems")
	if err != nil {
		return saved, networkError("upsert item", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return saved, err
	}

	return saved, decodeJSON("upsert item", resp, &saved)
}

// GetItem implements [ServerAdapter]. It POSTs the identifier pair to
// /getItemByHeaderId. Missing child lists are returned as empty slices.
func (h *httpServerAdapter) GetItem(ctx context.Context, headerID, itemID int64) (models.ItemDetails, error) {
	var details models.ItemDetails

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ItemLookupRequest{HeaderID: headerID, ItemID: itemID}).
		Post("/getItemByHeaderId")
	if err != nil {
		return details, networkError("get item", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return details, err
	}

	if err = decodeJSON("get item", resp, &details); err != nil {
		return details, err
	}

	if details.Reminders == nil {
		details.Reminders = []models.Reminder{}
	}
	if details.Documents == nil {
		details.Documents = []models.Document{}
	}
	return details, nil
}

// DeleteItem implements [ServerAdapter]. It sends DELETE /deleteItem/{id}.
func (h *httpServerAdapter) DeleteItem(ctx context.Context, itemID int64) error {
	return h.deleteByID(ctx, "delete item", "/deleteItem/{id}", itemID)
}

// GetAllReminders implements [ServerAdapter]. It GETs /getAllremainderDate.
func (h *httpServerAdapter) GetAllReminders(ctx context.Context) ([]models.Reminder, error) {
	var reminders []models.Reminder
	if err := h.getJSON(ctx, "get all reminders", "/getAllremainderDate", &reminders); err != nil {
		return nil, err
	}
	return reminders, nil
}

// AddReminder implements [ServerAdapter]. It POSTs the reminder to /addReminder.
func (h *httpServerAdapter) AddReminder(ctx context.Context, req models.ReminderRequest) error {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/addReminder")
	if err != nil {
		return networkError("add reminder", err)
	}

	return mapHTTPError(resp)
}

// EditReminder implements [ServerAdapter]. It GETs /editReminder/{id}.
func (h *httpServerAdapter) EditReminder(ctx context.Context, id int64) (models.Reminder, error) {
	var reminder models.Reminder

	resp, err := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Get("/editReminder/{id}")
	if err != nil {
		return reminder, networkError("edit reminder", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return reminder, err
	}

	if err = decodeJSON("edit reminder", resp, &reminder); err != nil {
		return reminder, err
	}

	if reminder.ID == 0 {
		reminder.ID = id
	}
	return reminder, nil
}

// UpdateReminder implements [ServerAdapter]. It PUTs the reminder to
// /updateReminder/{id}.
func (h *httpServerAdapter) UpdateReminder(ctx context.Context, id int64, req models.ReminderUpdateRequest) error {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(req).
		Put("/updateReminder/{id}")
	if err != nil {
		return networkError("update reminder", err)
	}

	return mapHTTPError(resp)
}

// DeleteReminder implements [ServerAdapter]. It sends DELETE
// /deleteReminder/{id}.
func (h *httpServerAdapter) DeleteReminder(ctx context.Context, id int64) error {
	return h.deleteByID(ctx, "delete reminder", "/deleteReminder/{id}", id)
}

// GetLeadTimes implements [ServerAdapter]. It GETs /remindMeName.
func (h *httpServerAdapter) GetLeadTimes(ctx context.Context) ([]models.LeadTime, error) {
	var leadTimes []models.LeadTime
	if err := h.getJSON(ctx, "get lead times", "/remindMeName", &leadTimes); err != nil {
		return nil, err
	}
	return leadTimes, nil
}

// GetAllDocuments implements [ServerAdapter]. It GETs /getAllDocumentData.
func (h *httpServerAdapter) GetAllDocuments(ctx context.Context) ([]models.Document, error) {
	var documents []models.Document
	if err := h.getJSON(ctx, "get all documents", "/getAllDocumentData", &documents); err != nil {
		return nil, err
	}
	return documents, nil
}

// SearchDocuments implements [ServerAdapter]. It GETs /searchDocuments?term=.
func (h *httpServerAdapter) SearchDocuments(ctx context.Context, term string) ([]models.SearchOption, error) {
	return h.search(ctx, "/searchDocuments", term, models.SearchKindDocument)
}

// SearchItems implements [ServerAdapter]. It GETs /searchItems?term=.
func (h *httpServerAdapter) SearchItems(ctx context.Context, term string) ([]models.SearchOption, error) {
	return h.search(ctx, "/searchItems", term, models.SearchKindItem)
}

func (h *httpServerAdapter) search(ctx context.Context, path, term string, kind models.SearchKind) ([]models.SearchOption, error) {
	var options []models.SearchOption

	resp, err := h.request(ctx).
		SetQueryParam("term", term).
		Get(path)
	if err != nil {
		return nil, networkError("search "+string(kind), err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if err = decodeJSON("search "+string(kind), resp, &options); err != nil {
		return nil, err
	}

	for i := range options {
		options[i].Kind = kind
	}
	return options, nil
}

// AddDocument implements [ServerAdapter]. It POSTs multipart form data to
// /addDocument.
func (h *httpServerAdapter) AddDocument(ctx context.Context, upload models.DocumentUpload) error {
	req, closeFile, err := h.multipartRequest(ctx, upload)
	if err != nil {
		return err
	}
	defer closeFile()

	resp, err := req.Post("/addDocument")
	if err != nil {
		return networkError("add document", err)
	}

	return mapHTTPError(resp)
}

// UpdateDocument implements [ServerAdapter]. It PUTs multipart form data to
// /updateDocument/{id}. An existing stored file is never re-uploaded.
func (h *httpServerAdapter) UpdateDocument(ctx context.Context, id int64, upload models.DocumentUpload) error {
	req, closeFile, err := h.multipartRequest(ctx, upload)
	if err != nil {
		return err
	}
	defer closeFile()

	resp, err := req.
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Put("/updateDocument/{id}")
	if err != nil {
		return networkError("update document", err)
	}

	return mapHTTPError(resp)
}

// multipartRequest builds the doc_name/header_id/item_id form and attaches
// doc_file when the upload carries a new file. The returned func releases a
// file opened from disk.
func (h *httpServerAdapter) multipartRequest(ctx context.Context, upload models.DocumentUpload) (*resty.Request, func(), error) {
	req := h.request(ctx).SetMultipartFormData(map[string]string{
		"doc_name":  upload.Name,
		"header_id": strconv.FormatInt(upload.HeaderID, 10),
		"item_id":   strconv.FormatInt(upload.ItemID, 10),
	})

	noop := func() {}
	if !upload.HasNewFile() {
		return req, noop, nil
	}

	file := upload.File
	reader, closeFile := file.Reader, noop
	if reader == nil {
		f, err := os.Open(file.Path)
		if err != nil {
			return nil, noop, fmt.Errorf("open document file: %w", err)
		}
		reader, closeFile = f, func() { _ = f.Close() }
	}

	name := file.Name
	if name == "" {
		name = filepath.Base(file.Path)
	}

	req.SetMultipartField("doc_file", name, file.ContentType, reader)
	return req, closeFile, nil
}

// DeleteDocument implements [ServerAdapter]. It sends DELETE
// /deleteDocument/{id}.
func (h *httpServerAdapter) DeleteDocument(ctx context.Context, id int64) error {
	return h.deleteByID(ctx, "delete document", "/deleteDocument/{id}", id)
}

// DownloadDocument implements [ServerAdapter]. It GETs /download/{id} without
// buffering the body. The file name comes from Content-Disposition and falls
// back to "document-{id}".
func (h *httpServerAdapter) DownloadDocument(ctx context.Context, id int64) (models.DownloadedDocument, error) {
	resp, err := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetDoNotParseResponse(true).
		Get("/download/{id}")
	if err != nil {
		return models.DownloadedDocument{}, networkError("download document", err)
	}

	body := resp.RawBody()
	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		defer body.Close()
		raw, _ := io.ReadAll(io.LimitReader(body, maxErrorBody))
		return models.DownloadedDocument{}, mapStatusError(resp.StatusCode(), raw)
	}

	return models.DownloadedDocument{
		FileName:    downloadFileName(resp.Header().Get("Content-Disposition"), id),
		ContentType: resp.Header().Get("Content-Type"),
		Size:        resp.RawResponse.ContentLength,
		Body:        body,
	}, nil
}

// DownloadURL implements [ServerAdapter].
func (h *httpServerAdapter) DownloadURL(id int64) string {
	return h.baseURL.JoinPath("download", strconv.FormatInt(id, 10)).String()
}

func downloadFileName(disposition string, id int64) string {
	if _, params, err := mime.ParseMediaType(disposition); err == nil {
		if name := filepath.Base(params["filename"]); name != "." && name != "/" && name != "" {
			return name
		}
	}
	return "document-" + strconv.FormatInt(id, 10)
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

func (h *httpServerAdapter) getJSON(ctx context.Context, op, path string, result any) error {
	resp, err := h.request(ctx).
		Get(path)
	if err != nil {
		return networkError(op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	return decodeJSON(op, resp, result)
}

// decodeJSON unmarshals a successful response body into out. An empty body
// leaves out untouched.
func decodeJSON(op string, resp *resty.Response, out any) error {
	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 {
		return nil
	}
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(out); err != nil {
		return fmt.Errorf("%s response: %w", op, err)
	}
	return nil
}

func (h *httpServerAdapter) deleteByID(ctx context.Context, op, path string, id int64) error {
	resp, err := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete(path)
	if err != nil {
		return networkError(op, err)
	}

	return mapHTTPError(resp)
}

// IsNetworkError reports whether err is a transport failure rather than a
// backend response.
func IsNetworkError(err error) bool {
	return errors.Is(err, ErrNetwork)
}
