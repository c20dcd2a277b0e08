package noaa

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// TableID is the element id of the prediction table on the NOAA page.
const TableID = "data_listing_table"

// ErrNoTable is returned when a page has no prediction table, usually because
// the page was not rendered before it was served.
var ErrNoTable = errors.New("tide table not found")

// GetTable fetches the NOAA prediction page and parses its table. The page
// fills the table in with JavaScript, so PageURL should point at something
// that serves the page after it has been rendered.
func (c *Client) GetTable(ctx context.Context, q *PredictionQuery) (Predictions, error) {
	addr, err := q.pageURL(c.PageURL)
	if err != nil {
		return nil, err
	}

	body, err := c.get(ctx, addr.String())
	if err != nil {
		return nil, err
	}

	return ParseTable(bytes.NewReader(body))
}

// pageURL keeps the parameter order of the page's own links.
func (q *PredictionQuery) pageURL(base string) (*url.URL, error) {
	addr, err := url.Parse(base)
	if err != nil {
		return nil, err
	}
	addr.RawQuery = fmt.Sprintf("id=%d&units=standard&bdate=%s&edate=%s&timezone=LST/LDT&clock=12hour&datum=MLLW",
		q.Station,
		q.Start.Format(TIME_FMT),
		q.End.Format(TIME_FMT))
	return addr, nil
}

// ParseTable reads every prediction out of the rendered table. Rows without
// five filled in cells, such as headers and spacers, are skipped. A data row
// that does not parse is an error.
func ParseTable(r io.Reader) (Predictions, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse the webpage: %w", err)
	}

	table := doc.Find("table#" + TableID)
	if table.Length() == 0 {
		return nil, ErrNoTable
	}

	var (
		preds    Predictions
		skipped  int
		parseErr error
	)
	table.Find("tr").EachWithBreak(func(i int, tr *goquery.Selection) bool {
		cells := tr.Find("td")
		if cells.Length() < 5 {
			skipped++
			return true
		}

		var row [5]string
		for j := range row {
			row[j] = strings.TrimSpace(cells.Eq(j).Text())
			if row[j] == "" {
				skipped++
				return true
			}
		}

		p, err := parseRow(row)
		if err != nil {
			parseErr = fmt.Errorf("table row %d: %w", i, err)
			return false
		}
		preds = append(preds, p)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	log.Printf("Parsed %d predictions, skipped %d rows", len(preds), skipped)
	return preds, nil
}

// parseRow converts the cells date, weekday, time, height, and kind.
func parseRow(row [5]string) (Prediction, error) {
	t, err := time.ParseInLocation(tableTimeFormat, row[0]+" "+row[2], Zone)
	if err != nil {
		return Prediction{}, fmt.Errorf("prediction time %q not in fmt %q: %w",
			row[0]+" "+row[2], tableTimeFormat, err)
	}

	height, err := ParseHeight(row[3])
	if err != nil {
		return Prediction{}, err
	}

	tide, err := ParseTide(row[4])
	if err != nil {
		return Prediction{}, err
	}

	return Prediction{
		Time:    Time(t),
		Weekday: row[1],
		Height:  height,
		Type:    tide,
	}, nil
}
