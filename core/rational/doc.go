// Package rational provides exact fraction arithmetic for rate calculations.
//
// Production rates are ratios of small integers (items per craft, crafts per
// second, buildings per item). Floating point drifts on round trips such as
// buildings -> rate -> buildings, so every calculation goes through Rational.
//
// # Parsing
//
// FromString accepts the text a user types into a numeric field:
//   - integers: "5", "-3"
//   - decimals: "1.25", ".5", "3."
//   - fractions: "2/3"
//
// Anything else, including a zero denominator, yields a *ParseError.
//
// # Usage
//
//	rate, err := rational.FromString("45/2")
//	if err != nil {
//	    return err
//	}
//	perBuilding := rational.FromFrac(3, 4)
//	buildings, _ := rate.Div(perBuilding)
//	fmt.Println(buildings.Decimal(1)) // 30
package rational
