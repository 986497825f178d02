package models

import (
	"testing"

	"github.com/shopspring/decimal"
	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitMoneyString(t *testing.T) {
	Convey("Two decimal places for most currencies", t, func() {
		So(NewMoney(decimal.RequireFromString("10.5"), "eur").String(), ShouldEqual, "10.50")
	})

	Convey("Whole amounts for zero-decimal currencies", t, func() {
		So(NewMoney(decimal.RequireFromString("1000"), "JPY").String(), ShouldEqual, "1000")
		So(NewMoney(decimal.RequireFromString("250"), "huf").String(), ShouldEqual, "250")
	})
}

func TestUnitMoneyMinorUnit(t *testing.T) {
	Convey("Cents are a minor unit of EUR", t, func() {
		m, err := ParseMoney("9.99", "EUR")
		So(err, ShouldBeNil)
		So(m.IsMinorUnit(), ShouldBeTrue)
	})

	Convey("Fractions of a cent are not", t, func() {
		m, err := ParseMoney("9.995", "EUR")
		So(err, ShouldBeNil)
		So(m.IsMinorUnit(), ShouldBeFalse)
		So(m.Round().String(), ShouldEqual, "10.00")
	})

	Convey("Yen have no decimals", t, func() {
		m, err := ParseMoney("100.5", "JPY")
		So(err, ShouldBeNil)
		So(m.IsMinorUnit(), ShouldBeFalse)
		So(m.Exponent(), ShouldEqual, 0)
	})
}
