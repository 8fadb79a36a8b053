package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"kma-forecast/config"
	"kma-forecast/internal/models"
	"kma-forecast/pkg/kmagrid"
	"kma-forecast/pkg/logger"
)

const (
	resultCodeOK     = "00"
	resultCodeNoData = "03"

	maxBodySnippet = 200
)

// PortalError is a non-success result code reported inside an otherwise valid response.
type PortalError struct {
	Code    string
	Message string
}

func (e *PortalError) Error() string {
	return fmt.Sprintf("portal error %s: %s", e.Code, e.Message)
}

type KMARepository struct {
	baseURL    string
	serviceKey string
	numOfRows  int
	httpClient HTTPClient
	l          *logger.Logger
}

func NewKMARepository(cfg config.KMAConfig, l *logger.Logger, httpClient HTTPClient) (*KMARepository, error) {
	serviceKey := normalizeServiceKey(cfg.ServiceKey)
	if serviceKey == "" {
		return nil, errors.New("service key cannot be empty")
	}

	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	return &KMARepository{
		baseURL:    cfg.BaseURL,
		serviceKey: serviceKey,
		numOfRows:  cfg.NumOfRows,
		httpClient: httpClient,
		l:          l,
	}, nil
}

func (k *KMARepository) Name() string {
	return "kma-vilage-fcst"
}

// KMAResponse is the JSON envelope of getVilageFcst.
type KMAResponse struct {
	Response struct {
		Header struct {
			ResultCode string `json:"resultCode"`
			ResultMsg  string `json:"resultMsg"`
		} `json:"header"`
		Body struct {
			DataType   string   `json:"dataType"`
			Items      kmaItems `json:"items"`
			PageNo     int      `json:"pageNo"`
			NumOfRows  int      `json:"numOfRows"`
			TotalCount int      `json:"totalCount"`
		} `json:"body"`
	} `json:"response"`
}

type kmaItems struct {
	Item []models.Item `json:"item"`
}

// UnmarshalJSON accepts the empty string the portal sends when a page has no rows.
func (i *kmaItems) UnmarshalJSON(data []byte) error {
	if strings.TrimSpace(string(data)) == `""` {
		i.Item = nil
		return nil
	}

	type plain kmaItems
	return json.Unmarshal(data, (*plain)(i))
}

func (k *KMARepository) FetchItems(ctx context.Context, bulletin models.Bulletin, point kmagrid.Point) ([]models.Item, error) {
	requestURL, err := k.requestURL(bulletin, point)
	if err != nil {
		return nil, err
	}

	k.l.Info("making kma API request", map[string]any{
		"base_date": bulletin.BaseDate,
		"base_time": bulletin.BaseTime,
		"nx":        point.NX,
		"ny":        point.NY,
		"rows":      k.numOfRows,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := k.httpClient.Do(req)
	if err != nil {
		// the url carries the service key
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return nil, fmt.Errorf("failed to do request: %w", err)
	}
	defer resp.Body.Close()

	k.l.Info("received kma API response", map[string]any{
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error (status %d): %s", resp.StatusCode, resp.Status)
	}

	// Key and quota errors come back as XML regardless of dataType.
	if !json.Valid(body) {
		return nil, fmt.Errorf("unexpected non-JSON response: %s", snippet(body))
	}

	var response KMAResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	header := response.Response.Header
	switch header.ResultCode {
	case resultCodeOK:
	case resultCodeNoData:
		k.l.Warning("no data for bulletin", map[string]any{
			"base_date": bulletin.BaseDate,
			"base_time": bulletin.BaseTime,
		})
		return []models.Item{}, nil
	default:
		return nil, &PortalError{Code: header.ResultCode, Message: header.ResultMsg}
	}

	items := response.Response.Body.Items.Item

	k.l.Info("parsed API response", map[string]any{
		"items":       len(items),
		"total_count": response.Response.Body.TotalCount,
	})

	return items, nil
}

func (k *KMARepository) requestURL(bulletin models.Bulletin, point kmagrid.Point) (string, error) {
	u, err := url.Parse(k.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base url: %w", err)
	}

	query := u.Query()
	query.Set("serviceKey", k.serviceKey)
	query.Set("dataType", "JSON")
	query.Set("base_date", bulletin.BaseDate)
	query.Set("base_time", bulletin.BaseTime)
	query.Set("nx", strconv.Itoa(point.NX))
	query.Set("ny", strconv.Itoa(point.NY))
	query.Set("numOfRows", strconv.Itoa(k.numOfRows))
	query.Set("pageNo", "1")
	u.RawQuery = query.Encode()

	return u.String(), nil
}

// normalizeServiceKey returns the decoded key so that it is encoded exactly once.
func normalizeServiceKey(key string) string {
	key = strings.TrimSpace(key)
	if !strings.Contains(key, "%") {
		return key
	}

	decoded, err := url.PathUnescape(key)
	if err != nil {
		return key
	}
	return decoded
}

func snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > maxBodySnippet {
		s = s[:maxBodySnippet] + "..."
	}
	return s
}
