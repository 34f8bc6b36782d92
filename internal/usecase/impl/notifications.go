package impl

import (
	"fmt"

	"freelancer/internal/domain/entity"

	"github.com/google/uuid"
)

func feedbackReceivedNotification(userID uuid.UUID, project *entity.Project, feedback *entity.Feedback) *entity.Notification {
	return &entity.Notification{
		UserID:  userID,
		Type:    entity.NotificationFeedbackReceived,
		Title:   "New feedback received",
		Message: fmt.Sprintf("New feedback was added to project %q.", project.Name),
		Metadata: map[string]any{
			"project_id":  project.ID.String(),
			"feedback_id": feedback.ID.String(),
		},
	}
}

func revisionUploadedNotification(userID uuid.UUID, revision *entity.Revision) *entity.Notification {
	return &entity.Notification{
		UserID:  userID,
		Type:    entity.NotificationRevisionUploaded,
		Title:   "Revision uploaded",
		Message: fmt.Sprintf("Revision v%d was uploaded.", revision.Version),
		Metadata: map[string]any{
			"feedback_id": revision.FeedbackID.String(),
			"revision_id": revision.ID.String(),
			"version":     revision.Version,
		},
	}
}

func revisionApprovedNotification(userID uuid.UUID, revision *entity.Revision) *entity.Notification {
	return &entity.Notification{
		UserID:  userID,
		Type:    entity.NotificationRevisionApproved,
		Title:   "Revision approved",
		Message: fmt.Sprintf("Revision v%d was approved.", revision.Version),
		Metadata: map[string]any{
			"feedback_id": revision.FeedbackID.String(),
			"revision_id": revision.ID.String(),
			"version":     revision.Version,
		},
	}
}
