/*
Package tafqit converts monetary amounts into formal Arabic words.

Tafqit (تفقيط) is the practice of writing an amount in words on cheques and
other financial documents, so that the figure cannot be altered. The package
combines the [decimal] package's exact decimal arithmetic with a [Currency]
struct carrying the Arabic unit nouns of each currency.

# Features

  - Immutable values, safe for concurrent use by multiple goroutines
  - Cardinal Arabic words for integers up to 999,999,999,999
  - Grammatical singular, dual, and plural selection for the scale nouns
    (thousand, million, billion), including the counted-noun rule that
    quantities of eleven and above take the singular form
  - Cheque legends combining main-unit and subunit clauses per currency
  - Eastern Arabic-Indic numerals for the cheque's figure box

# Representation

The package consists of two main structs: Amount and Currency.
An Amount represents a monetary value and consists of a Currency and
a decimal.Decimal value.
The Currency struct represents a currency and is implemented as
an integer index into an in-memory array containing information
such as code, scale, and the Arabic nouns of its major and minor units.

# Conversion

[Convert] turns a non-negative integer into cardinal Arabic words.
[AmountWords] renders a cheque legend from a float amount and a pair of unit
nouns. [Amount.Words] does the same using the amount's own currency, splitting
the value into whole units and minor units at the currency's scale.

Unit nouns are used in their bare dictionary form; case endings and the
dual/plural inflection of the nouns themselves are deliberately not applied.

# Errors

Conversion functions signal invalid input (negative, non-finite, or beyond the
supported range) by returning an empty string rather than an error, mirroring
how the values are consumed: an empty legend simply leaves the cheque line
blank. Constructors for Amount and Currency values return errors; the Must*
variants panic and are intended for initializing globals.
*/
package tafqit
