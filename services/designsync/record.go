package designsync

import (
	"strconv"
	"time"

	"solarsync/lib/platforms/quickbase"
)

// Quickbase field ids of the destination table. Field 11 (the full property
// address) is deliberately not written.
const (
	ColumnDesignName       = "6"
	ColumnSystemSize       = "7"
	ColumnModuleCount      = "8"
	ColumnModuleName       = "9"
	ColumnAnnualProduction = "10"
	ColumnStreet           = "12"
	ColumnStreet2          = "13"
	ColumnCity             = "14"
	ColumnState            = "15"
	ColumnPostalCode       = "16"
	ColumnCountry          = "17"
	ColumnAzimuth          = "18"
	ColumnProposalLink     = "19"
)

// Columns is the order fields appear in every record.
var Columns = []string{
	ColumnDesignName,
	ColumnSystemSize,
	ColumnModuleCount,
	ColumnModuleName,
	ColumnAnnualProduction,
	ColumnStreet,
	ColumnStreet2,
	ColumnCity,
	ColumnState,
	ColumnPostalCode,
	ColumnCountry,
	ColumnAzimuth,
	ColumnProposalLink,
}

// ColumnIds returns Columns as integers, the form `fieldsToReturn` takes.
func ColumnIds() []int {
	ids := make([]int, len(Columns))
	for i, c := range Columns {
		id, err := strconv.Atoi(c)
		if err != nil {
			panic(err)
		}
		ids[i] = id
	}
	return ids
}

type DesignRow struct {
	DesignId   string
	Name       string
	SystemSize float64
}

type ProposalRow struct {
	UpdatedAt time.Time
	Link      string
}

type SummaryRow struct {
	AnnualProduction float64
	Azimuth          float64
	ModuleName       string
	ModuleCount      int
}

type AddressRow struct {
	Street string
	// always empty, the destination expects the column to be present
	Street2    string
	City       string
	State      string
	PostalCode string
	Country    string
}

// Record is one flat destination row, one per design.
type Record struct {
	DesignName       string
	SystemSize       float64
	ModuleCount      int
	ModuleName       string
	AnnualProduction float64
	Street           string
	Street2          string
	City             string
	State            string
	PostalCode       string
	Country          string
	Azimuth          float64
	ProposalLink     string
}

// BuildRecord joins the fragments fetched for one design. The design id and
// the proposal timestamp are only needed to fetch and pick, they are dropped.
func BuildRecord(design DesignRow, proposal ProposalRow, summary SummaryRow, address AddressRow) Record {
	return Record{
		DesignName:       design.Name,
		SystemSize:       design.SystemSize,
		ModuleCount:      summary.ModuleCount,
		ModuleName:       summary.ModuleName,
		AnnualProduction: summary.AnnualProduction,
		Street:           address.Street,
		Street2:          address.Street2,
		City:             address.City,
		State:            address.State,
		PostalCode:       address.PostalCode,
		Country:          address.Country,
		Azimuth:          summary.Azimuth,
		ProposalLink:     proposal.Link,
	}
}

// Fields returns the record keyed by field id, in Columns order.
func (r Record) Fields() quickbase.Record {
	return quickbase.Record{
		{Id: ColumnDesignName, Value: r.DesignName},
		{Id: ColumnSystemSize, Value: r.SystemSize},
		{Id: ColumnModuleCount, Value: r.ModuleCount},
		{Id: ColumnModuleName, Value: r.ModuleName},
		{Id: ColumnAnnualProduction, Value: r.AnnualProduction},
		{Id: ColumnStreet, Value: r.Street},
		{Id: ColumnStreet2, Value: r.Street2},
		{Id: ColumnCity, Value: r.City},
		{Id: ColumnState, Value: r.State},
		{Id: ColumnPostalCode, Value: r.PostalCode},
		{Id: ColumnCountry, Value: r.Country},
		{Id: ColumnAzimuth, Value: r.Azimuth},
		{Id: ColumnProposalLink, Value: r.ProposalLink},
	}
}
