package queries

const (
	// Лок на нормализованную пару (min,max), чтобы параллельное первое создание
	// одного и того же 1:1 чата не породило дубликат.
	QueryLockDirectPair = `SELECT pg_advisory_xact_lock(hashtextextended($1::text || ':' || $2::text, 0));`

	QueryFindDirectChat = `
		SELECT c.id
		FROM chats c
		JOIN chat_participants p1 ON p1.chat_id = c.id AND p1.user_id = $1
		JOIN chat_participants p2 ON p2.chat_id = c.id AND p2.user_id = $2
		WHERE c.is_group = FALSE;
	`
	QueryCreateChat = `
		INSERT INTO chats (is_group)
		VALUES (FALSE)
		RETURNING id;
	`
	QueryAddParticipants = `
		INSERT INTO chat_participants (chat_id, user_id)
		VALUES ($1, $2), ($1, $3);
	`
	QueryListUserChats = `
		SELECT c.id, c.created_at,
		       u.id, u.username, u.avatar_url, u.is_online,
		       lm.content, lm.created_at
		FROM chats c
		JOIN chat_participants cp  ON cp.chat_id = c.id AND cp.user_id = $1
		JOIN chat_participants cp2 ON cp2.chat_id = c.id AND cp2.user_id <> $1
		JOIN users u ON u.id = cp2.user_id
		LEFT JOIN LATERAL (
			SELECT content, created_at
			FROM messages
			WHERE chat_id = c.id
			ORDER BY created_at DESC, id DESC
			LIMIT 1
		) lm ON TRUE
		ORDER BY COALESCE(lm.created_at, c.created_at) DESC;
	`
)
