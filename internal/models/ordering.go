package models

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sorter applies the default list orderings using a locale-aware collator:
// houses and contacts by name, systems by code, incidents by date descending
// (most recent first), parkings and vehicles by house name then item name.
// Equal keys fall back to document id order so results are stable.
type Sorter struct {
	col *collate.Collator
}

// NewSorter builds a Sorter for the given BCP 47 locale. Unknown locales
// degrade to the undetermined-language collation.
func NewSorter(locale string) *Sorter {
	return &Sorter{col: collate.New(language.Make(locale))}
}

// compare collates a and b, breaking ties with the document ids.
func (s *Sorter) compare(a, b, idA, idB string) bool {
	if c := s.col.CompareString(a, b); c != 0 {
		return c < 0
	}
	return idA < idB
}

// Houses sorts houses by name.
func (s *Sorter) Houses(houses []House) {
	sort.SliceStable(houses, func(i, j int) bool {
		return s.compare(houses[i].Name, houses[j].Name, houses[i].ID, houses[j].ID)
	})
}

// Contacts sorts contacts by name.
func (s *Sorter) Contacts(contacts []Contact) {
	sort.SliceStable(contacts, func(i, j int) bool {
		return s.compare(contacts[i].Name, contacts[j].Name, contacts[i].ID, contacts[j].ID)
	})
}

// Systems sorts systems by code.
func (s *Sorter) Systems(systems []System) {
	sort.SliceStable(systems, func(i, j int) bool {
		return s.compare(systems[i].Code, systems[j].Code, systems[i].ID, systems[j].ID)
	})
}

// Incidents sorts incidents by date descending, most recent first. Dates are
// YYYY-MM-DD strings, so plain string comparison orders them correctly.
func (s *Sorter) Incidents(incidents []Incident) {
	sort.SliceStable(incidents, func(i, j int) bool {
		if incidents[i].Date != incidents[j].Date {
			return incidents[i].Date > incidents[j].Date
		}
		return incidents[i].ID < incidents[j].ID
	})
}

// Parkings sorts parkings by house name, then space name.
func (s *Sorter) Parkings(parkings []Parking) {
	sort.SliceStable(parkings, func(i, j int) bool {
		if c := s.col.CompareString(parkings[i].HouseName, parkings[j].HouseName); c != 0 {
			return c < 0
		}
		return s.compare(parkings[i].Name, parkings[j].Name, parkings[i].ID, parkings[j].ID)
	})
}

// Vehicles sorts vehicles by house name, then vehicle name.
func (s *Sorter) Vehicles(vehicles []Vehicle) {
	sort.SliceStable(vehicles, func(i, j int) bool {
		if c := s.col.CompareString(vehicles[i].HouseName, vehicles[j].HouseName); c != 0 {
			return c < 0
		}
		return s.compare(vehicles[i].Name, vehicles[j].Name, vehicles[i].ID, vehicles[j].ID)
	})
}
