package queries

const (
	QueryCreateMessage = `
		INSERT INTO messages (chat_id, sender_id, content, image_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at;
	`
	QueryIsParticipant = `
		SELECT EXISTS(SELECT 1 FROM chat_participants WHERE chat_id = $1 AND user_id = $2);
	`
	QueryListChatMessages = `
		SELECT m.id, m.chat_id, m.sender_id, m.content, m.image_url, m.created_at,
		       u.username, u.avatar_url
		FROM messages m
		JOIN users u ON u.id = m.sender_id
		WHERE m.chat_id = $1
		ORDER BY m.created_at ASC, m.id ASC;
	`
)
