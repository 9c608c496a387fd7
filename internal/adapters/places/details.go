package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"stylecloset-service/internal/domain"
	"stylecloset-service/internal/platform/obs"
)

// Fields requested from the details endpoint; anything more costs extra
// per call.
const detailFields = "formatted_phone_number,opening_hours,website,formatted_address"

type detailsResponse struct {
	Result struct {
		FormattedPhoneNumber string `json:"formatted_phone_number"`
		Website              string `json:"website"`
		FormattedAddress     string `json:"formatted_address"`
		OpeningHours         struct {
			WeekdayText []string `json:"weekday_text"`
		} `json:"opening_hours"`
	} `json:"result"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// FetchDetail retrieves the enrichment record for one place id.
func (c *Client) FetchDetail(ctx context.Context, placeID string) (_ *domain.PlaceDetail, err error) {
	defer obs.Time(ctx, "places.FetchDetail")(&err)

	if err := c.requireKey(); err != nil {
		return nil, err
	}

	params := func() url.Values {
		v := url.Values{}
		v.Set("place_id", placeID)
		v.Set("fields", detailFields)
		return v
	}

	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		return c.newRequest(ctx, "/place/details/json", params())
	})
	if err != nil {
		return nil, fmt.Errorf("place details %q: %w", placeID, err)
	}
	defer resp.Body.Close()

	var decoded detailsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode details response: %w", err)
	}

	if err := statusToError(decoded.Status); err != nil {
		return nil, err
	}

	return &domain.PlaceDetail{
		Phone:        decoded.Result.FormattedPhoneNumber,
		Website:      decoded.Result.Website,
		Address:      decoded.Result.FormattedAddress,
		OpeningHours: decoded.Result.OpeningHours.WeekdayText,
	}, nil
}
