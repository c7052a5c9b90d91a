// Package fra records companies' balance-sheet figures, derives their current
// ratio and debt ratio, and classifies how suitable they are as an investment.
//
// The core functionalities are:
//   - Ratios: CurrentRatio and DebtRatio compute percentages rounded to one
//     decimal, with a defined value when the denominator is zero.
//   - Classification: LiquidityLevel and DebtLevel grade each ratio, Decide
//     returns the overall decision, ShortTerm and LongTerm look up the verdict
//     for each horizon.
//   - Persistence: Store keeps the records as a single JSON array behind a
//     Storage, treating missing or corrupted content as an empty collection.
//   - Entry: Form coerces raw user input and previews the result on every
//     change, before submitting it to the Store.
//
// This package serves as the foundational logic for the `fra` command-line
// tool.
package fra
