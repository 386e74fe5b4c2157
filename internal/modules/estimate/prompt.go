package estimate

import "fmt"

const promptTemplate = `You are a travel cost estimator for Ethiopia. Provide an estimated range of total travel cost in USD based on the following inputs:

- City/Region: %s
- Type of accommodation: %s
- Number of travelers: %d
- Travel month: %s

Return the result in the following format:

Low Estimate Range: $XXXX - $YYYY
High Estimate Range: $AAAA - $BBBB
Cost Breakdown: Cost breakdown for both ranges.`

// BuildPrompt renders req into the fixed estimator instructions. Same input, same bytes.
func BuildPrompt(req Request) string {
	return fmt.Sprintf(promptTemplate, req.Location, req.Accommodation, req.People, req.Season)
}
