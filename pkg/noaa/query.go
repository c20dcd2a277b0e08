package noaa

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// GetPredictions fetches high and low tide predictions from the NOAA data API.
func (c *Client) GetPredictions(ctx context.Context, q *PredictionQuery) (Predictions, error) {
	var result NOAAResult

	addr, err := q.apiURL(c.APIURL)
	if err != nil {
		return nil, err
	}

	body, err := c.get(ctx, addr.String())
	if err != nil {
		return nil, err
	}

	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode predictions: %w", err)
	}
	if result.Error != nil {
		return nil, fmt.Errorf("NOAA API error: %s", result.Error.Message)
	}

	// The API does not say which day of the week it is.
	for i := range result.Predictions {
		result.Predictions[i].Weekday = result.Predictions[i].T().Format(weekdayFormat)
	}

	return result.Predictions, nil
}

func (q *PredictionQuery) apiURL(base string) (*url.URL, error) {
	addr, err := url.Parse(base)
	if err != nil {
		return nil, err
	}
	addr.RawQuery = q.build().Encode()
	return addr, nil
}

func (q *PredictionQuery) build() url.Values {
	vals := make(url.Values)
	vals.Add("begin_date", q.Start.Format(TIME_FMT))
	vals.Add("end_date", q.End.Format(TIME_FMT))
	vals.Add("station", fmt.Sprintf("%d", q.Station))
	vals.Add("product", "predictions")
	vals.Add("datum", "MLLW")
	vals.Add("time_zone", "lst_ldt")
	vals.Add("interval", "hilo")
	vals.Add("units", "english")
	vals.Add("format", "json")
	return vals
}
