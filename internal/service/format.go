package service

import "fmt"

// FormatConversion renders a conversion as
// "<amount> <symbol><code> is <converted> <symbol><code> (Rate as of <timestamp>)".
func FormatConversion(c *Conversion) string {
	return fmt.Sprintf("%.2f %s%s is %.2f %s%s (Rate as of %s)",
		c.Amount, Symbol(c.Source), c.Source,
		c.Converted, Symbol(c.Target), c.Target,
		c.LastUpdated)
}
