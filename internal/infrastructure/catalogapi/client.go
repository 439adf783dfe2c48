// Package catalogapi resolves purchase types against the upstream catalog
// REST API.
package catalogapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Yoas-Hutapea/IDISys-sub000/internal/domain/procurement"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/infrastructure/persistence/mappers"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/logger"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/utils"
)

const (
	defaultTimeout  = 10 * time.Second
	maxResponseSize = 4 << 20
	userAgent       = "idisys-backend"
)

// Client implements procurement.TypeCatalog over HTTP. The upstream API
// returns either a bare JSON array or an envelope with a "data" array.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     logger.Interface
}

func NewClient(baseURL string, timeout time.Duration, log logger.Interface) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: log,
	}
}

func (c *Client) ResolveType(ctx context.Context, token string) (*procurement.PurchaseTypeRef, error) {
	records, err := c.fetchRecords(ctx, "/purchase-types")
	if err != nil {
		return nil, err
	}

	id, byID := parseID(token)
	key := utils.FoldKey(token)
	for _, raw := range records {
		ref, err := mappers.PurchaseTypeFromRecord(raw)
		if err != nil {
			c.logger.Warnw("skipping malformed purchase type record", "error", err)
			continue
		}
		if (byID && ref.ID == id) || (!byID && utils.FoldKey(ref.Label) == key) {
			return ref, nil
		}
	}

	return nil, fmt.Errorf("purchase type %q: %w", token, procurement.ErrNotFound)
}

func (c *Client) ResolveSubType(ctx context.Context, typeID int, token string) (*procurement.PurchaseSubTypeRef, error) {
	records, err := c.fetchRecords(ctx, "/purchase-types/"+strconv.Itoa(typeID)+"/sub-types")
	if err != nil {
		return nil, err
	}

	id, byID := parseID(token)
	key := utils.FoldKey(token)
	for _, raw := range records {
		ref, err := mappers.PurchaseSubTypeFromRecord(raw, typeID)
		if err != nil {
			c.logger.Warnw("skipping malformed purchase sub-type record", "type_id", typeID, "error", err)
			continue
		}
		if ref.ParentTypeID != typeID {
			continue
		}
		if (byID && ref.ID == id) || (!byID && utils.FoldKey(ref.Label) == key) {
			return ref, nil
		}
	}

	return nil, fmt.Errorf("purchase sub-type %q of type %d: %w", token, typeID, procurement.ErrNotFound)
}

func (c *Client) fetchRecords(ctx context.Context, path string) ([]mappers.RawCatalogRecord, error) {
	endpoint, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return nil, fmt.Errorf("build catalog url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("read catalog response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("catalog %s: %w", path, procurement.ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		c.logger.Warnw("catalog API returned unexpected status",
			"path", path,
			"status", resp.StatusCode,
			"body", utils.TruncateForLog(string(body), 200),
		)
		return nil, fmt.Errorf("unexpected status code from catalog: %d", resp.StatusCode)
	}

	records, err := decodeRecords(body)
	if err != nil {
		return nil, fmt.Errorf("decode catalog response: %w", err)
	}

	c.logger.Debugw("fetched catalog records", "path", path, "count", len(records))
	return records, nil
}

// decodeRecords accepts `[...]` or `{"data": [...]}` with any casing of "data".
func decodeRecords(body []byte) ([]mappers.RawCatalogRecord, error) {
	body = bytes.TrimSpace(body)
	if len(body) > 0 && body[0] == '[' {
		return decodeArray(body)
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, err
	}
	for k, v := range envelope {
		if utils.NormalizeFieldName(k) == "data" {
			return decodeArray(v)
		}
	}
	return nil, fmt.Errorf("response has no data array")
}

func decodeArray(raw []byte) ([]mappers.RawCatalogRecord, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var records []mappers.RawCatalogRecord
	if err := dec.Decode(&records); err != nil {
		return nil, err
	}
	return records, nil
}

func parseID(token string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
