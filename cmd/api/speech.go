package main

import (
	"fmt"
	"strings"

	"fire-monitor/internal/fire"
	"fire-monitor/internal/types"
)

const (
	unsupportedLocationMessage = "Fire monitor is not supported in your current location."
	invalidRequestMessage      = "Fire monitor needs to know your postal code and country to look up the nearest fire."
	upstreamErrorMessage       = "There was an error trying to get fire data, the national fire data server may be down. Please try again later."
	generalErrorMessage        = "There was a general error. Please try again later."
	noFiresMessage             = "There are no active uncontained fires based on the National Interagency Fire Center."
)

// renderSpeech renders narrative facts as English sentences.
func renderSpeech(facts fire.NarrativeFacts) string {
	if !facts.HasIncident {
		return noFiresMessage
	}

	var sentences []string

	if facts.NearbyPlural {
		sentences = append(sentences, fmt.Sprintf("There are %d uncontained fires within 50 miles.", facts.NearbyCount))
	} else {
		sentences = append(sentences, fmt.Sprintf("There is %d uncontained fire within 50 miles.", facts.NearbyCount))
	}

	name := ""
	if facts.IncidentName != nil {
		name = *facts.IncidentName
	}
	sentences = append(sentences, fmt.Sprintf("The closest uncontained fire is the %s fire.", name))

	distance := fmt.Sprintf("%d %s from your zip code.", facts.DistanceMiles, plural("mile", facts.DistancePlural))
	if facts.City != nil {
		sentences = append(sentences, fmt.Sprintf("It is in %s, and is %s", *facts.City, distance))
	} else {
		sentences = append(sentences, "It is "+distance)
	}

	sentences = append(sentences, fmt.Sprintf("It has burned %d %s, and is %d percent contained.",
		facts.Acres, plural("acre", facts.AcresPlural), facts.PercentContained))

	delta := facts.Delta
	switch delta.Direction {
	case fire.DirectionFarther:
		sentences = append(sentences, fmt.Sprintf("Since it started, it is %d %s further away from your zip code.",
			delta.Magnitude, plural("mile", delta.Plural)))
	case fire.DirectionCloser:
		sentences = append(sentences, fmt.Sprintf("Since it started, it is %d %s closer to your zip code.",
			delta.Magnitude, plural("mile", delta.Plural)))
	}

	return strings.Join(sentences, " ")
}

func plural(word string, isPlural bool) string {
	if isPlural {
		return word + "s"
	}
	return word
}

// errorMessage is the user-facing reply for a failed lookup.
func errorMessage(kind types.ErrorKind) string {
	switch kind {
	case types.KindInvalidArgument:
		return invalidRequestMessage
	case types.KindUnsupportedCountry, types.KindNotFound:
		return unsupportedLocationMessage
	case types.KindTransport, types.KindParse:
		return upstreamErrorMessage
	default:
		return generalErrorMessage
	}
}
