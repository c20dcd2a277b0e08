// Package noaa retrieves tide predictions from NOAA.  Predictions are requested
// per station for a span of days (see PredictionQuery), either by scraping the
// rendered prediction table (GetTable) or from the JSON data API
// (GetPredictions).  Both return a list of predictions with time, height, and
// whether the tide is high or low.
//
// All times are the station's wall clock (LST/LDT) and are stored in UTC so
// that no daylight saving adjustment is ever applied to them.
package noaa
