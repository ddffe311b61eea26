package forecast

// Summary is the per-day reduction of a forecast series: the peak
// temperature across the day's samples and the condition of the first
// matching sample in feed order. Both fields are nil exactly when no
// sample fell on the target date, which is a legitimate outcome for
// dates beyond the feed's horizon.
type Summary struct {
	MaxTemp   *float64 `json:"max_temp"`
	Condition *string  `json:"condition"`
}

// Available reports whether the summary carries data.
func (s Summary) Available() bool {
	return s.MaxTemp != nil
}

// MatchDay selects the samples whose calendar date equals targetDate
// ("YYYY-MM-DD") and reduces them to a Summary. The condition comes
// from the first matching sample, not the sample with the peak
// temperature. Malformed samples are skipped rather than reported;
// callers pass an empty series after a failed fetch and land on the
// same empty summary.
func MatchDay(targetDate string, samples []Sample) Summary {
	var out Summary
	if targetDate == "" {
		return out
	}
	for _, sample := range samples {
		if sample.Day() != targetDate {
			continue
		}
		temp := sample.Main.TempMax
		if out.MaxTemp == nil {
			cond := sample.ConditionMain()
			out.MaxTemp = &temp
			out.Condition = &cond
			continue
		}
		if temp > *out.MaxTemp {
			out.MaxTemp = &temp
		}
	}
	return out
}
