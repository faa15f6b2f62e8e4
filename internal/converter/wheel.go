package converter

import (
	"spin_wheel/internal/api/dto/wheel"
	"spin_wheel/internal/model"

	"github.com/google/uuid"
)

func ToSegments(req []wheel.Segment) []model.Segment {
	result := make([]model.Segment, len(req))
	for i, s := range req {
		result[i] = model.Segment{Color: s.Color, Text: s.Text}
	}
	return result
}

func ToSegmentsResponse(segments []model.Segment) wheel.SegmentsResponse {
	return wheel.SegmentsResponse{Segments: toSegmentDTOs(segments)}
}

func ToStateResponse(snap model.WheelSnapshot) wheel.StateResponse {
	return wheel.StateResponse{
		Segments: toSegmentDTOs(snap.Segments),
		Phase:    snap.State.Phase.String(),
		Rotation: snap.State.Rotation,
		Selected: snap.State.Selected,
		SpinID:   spinID(snap.State.Spin.ID),
		Announcement: wheel.Announcement{
			Open:  snap.Announcement.Open,
			Text:  snap.Announcement.Text,
			Color: snap.Announcement.Color,
		},
		Size: snap.Size,
	}
}

func ToSpinResponse(spin model.Spin) wheel.SpinResponse {
	return wheel.SpinResponse{
		SpinID:     spin.ID.String(),
		StartAngle: spin.StartAngle,
		EndAngle:   spin.EndAngle,
		DurationMs: spin.Duration.Milliseconds(),
	}
}

func ToStatsResponse(stats model.SpinStats) wheel.StatsResponse {
	recent := make([]wheel.SpinRecord, len(stats.Recent))
	for i, r := range stats.Recent {
		recent[i] = wheel.SpinRecord{
			SpinID:     r.SpinID.String(),
			Index:      r.Index,
			Text:       r.Text,
			Rotation:   r.Rotation,
			DurationMs: r.Duration.Milliseconds(),
			At:         r.At,
		}
	}
	hits := stats.Hits
	if hits == nil {
		hits = map[int]int{}
	}
	return wheel.StatsResponse{
		TotalSpins:     stats.TotalSpins,
		CancelledSpins: stats.CancelledSpins,
		Hits:           hits,
		Recent:         recent,
	}
}

func ToEvent(ev model.Event) wheel.Event {
	return wheel.Event{
		Type:     string(ev.Type),
		SpinID:   spinID(ev.SpinID),
		Rotation: ev.Rotation,
		Selected: ev.Selected,
	}
}

func toSegmentDTOs(segments []model.Segment) []wheel.Segment {
	result := make([]wheel.Segment, len(segments))
	for i, s := range segments {
		result[i] = wheel.Segment{Color: s.Color, Text: s.Text}
	}
	return result
}

func spinID(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}
	return id.String()
}
