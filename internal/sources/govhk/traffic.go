package govhk

import (
	"encoding/xml"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/harborpark/transport/internal/domain"
	"github.com/harborpark/transport/internal/logger"
)

// hongKong is the fixed offset the traffic feed's reference dates are
// expressed in.
var hongKong = time.FixedZone("HKT", 8*60*60)

var whitespaceRe = regexp.MustCompile(`\s+`)

// trafficNews mirrors the special traffic news XML document. The root
// element name is left unpinned so namespace or casing drift upstream does
// not break parsing; a document with a single message decodes into a
// one-element slice.
type trafficNews struct {
	Messages []trafficMessage `xml:"message"`
}

type trafficMessage struct {
	MsgID         string `xml:"msgID"`
	CurrentStatus string `xml:"CurrentStatus"`
	EngShort      string `xml:"EngShort"`
	EngText       string `xml:"EngText"`
	ReferenceDate string `xml:"ReferenceDate"`
	IncidentRefNo string `xml:"IncidentRefNo"`
}

// TrafficNormalizer turns the raw special-traffic-news XML into incident
// records. Parse failures are recovered locally: the traffic section is
// auxiliary, so a broken feed degrades to an empty list.
type TrafficNormalizer struct {
	log logger.Logger
}

func NewTrafficNormalizer(log logger.Logger) *TrafficNormalizer {
	return &TrafficNormalizer{log: log}
}

// Normalize parses xmlText and returns the incident list plus the start
// time of the first incident as the feed's last-updated marker (empty when
// the list is empty or the first incident has no parsable start time).
func (n *TrafficNormalizer) Normalize(xmlText string) ([]domain.TrafficIncident, string) {
	incidents := []domain.TrafficIncident{}
	if xmlText == "" {
		return incidents, ""
	}

	var doc trafficNews
	if err := xml.Unmarshal([]byte(xmlText), &doc); err != nil {
		n.log.Error("unable to parse special traffic news XML", logger.Error(err))
		return incidents, ""
	}

	for _, msg := range doc.Messages {
		incidents = append(incidents, n.normalizeMessage(msg))
	}

	timestamp := ""
	if len(incidents) > 0 {
		timestamp = incidents[0].StartTime
	}
	return incidents, timestamp
}

func (n *TrafficNormalizer) normalizeMessage(msg trafficMessage) domain.TrafficIncident {
	short := cleanText(msg.EngShort)
	long := cleanText(msg.EngText)

	english := long
	if english == "" {
		english = short
	}

	title := short
	if title == "" {
		title = long
	}
	if title == "" {
		title = strings.TrimSpace("Special traffic news " + strings.TrimSpace(msg.MsgID))
	}

	status, err := strconv.Atoi(strings.TrimSpace(msg.CurrentStatus))
	if err != nil {
		status = 0
	}
	severity := domain.SeverityFromStatus(status)

	id := strings.TrimSpace(msg.MsgID)
	if id == "" {
		id = uuid.NewString()
	}

	category := cleanText(msg.IncidentRefNo)
	if category == "" {
		category = severityLabel(severity)
	}

	return domain.TrafficIncident{
		ID:          id,
		Title:       title,
		Category:    category,
		Region:      domain.DistrictFromText(english),
		Location:    firstSentence(english),
		Description: english,
		StartTime:   parseReferenceDate(msg.ReferenceDate),
		Severity:    severity,
	}
}

func severityLabel(severity domain.Severity) string {
	switch severity {
	case domain.SeverityCritical:
		return "Critical incident"
	case domain.SeverityMajor:
		return "Major delay"
	default:
		return "Advisory"
	}
}

func cleanText(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// firstSentence returns the first period-delimited sentence of the cleaned
// text, or "" when there is none.
func firstSentence(text string) string {
	for _, segment := range strings.Split(text, ".") {
		if trimmed := strings.TrimSpace(segment); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// parseReferenceDate parses the feed's localized reference string of the
// form "<date> <AM/PM marker> <time>", where the marker may be Chinese
// (上午 morning, 下午 afternoon, 晚上 evening). Hours are normalized to
// 24-hour form, the string is interpreted at UTC+8, and the result is
// RFC 3339 UTC. Structurally incomplete or unparsable input yields "".
func parseReferenceDate(value string) string {
	parts := strings.Fields(strings.TrimSpace(value))
	if len(parts) < 3 {
		return ""
	}
	datePart, periodPart, timePart := parts[0], parts[1], parts[2]

	hour, minute, second, ok := splitClock(timePart)
	if !ok {
		return ""
	}

	if (strings.Contains(periodPart, "下午") || strings.Contains(periodPart, "晚上")) && hour < 12 {
		hour += 12
	}
	if strings.Contains(periodPart, "上午") && hour == 12 {
		hour = 0
	}

	dateSegments := strings.Split(strings.ReplaceAll(datePart, "/", "-"), "-")
	if len(dateSegments) != 3 {
		return ""
	}
	year, errY := strconv.Atoi(dateSegments[0])
	month, errM := strconv.Atoi(dateSegments[1])
	day, errD := strconv.Atoi(dateSegments[2])
	if errY != nil || errM != nil || errD != nil {
		return ""
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return ""
	}

	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, hongKong)
	return t.UTC().Format(time.RFC3339)
}

func splitClock(s string) (hour, minute, second int, ok bool) {
	segments := strings.Split(s, ":")
	if len(segments) != 3 {
		return 0, 0, 0, false
	}
	var errH, errM, errS error
	hour, errH = strconv.Atoi(segments[0])
	minute, errM = strconv.Atoi(segments[1])
	second, errS = strconv.Atoi(segments[2])
	if errH != nil || errM != nil || errS != nil ||
		hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return 0, 0, 0, false
	}
	return hour, minute, second, true
}
