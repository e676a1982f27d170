package queries

const (
	QueryCreateUser = `
		INSERT INTO users (username, email, password, is_online, last_seen)
		VALUES ($1, $2, $3, TRUE, $4)
		RETURNING id;
	`
	QueryGetUserByID = `
		SELECT id, username, email, password, avatar_url, is_online, last_seen
		FROM users
		WHERE id = $1;
	`
	QueryGetUserByEmail = `
		SELECT id, username, email, password, avatar_url, is_online, last_seen
		FROM users
		WHERE email = $1;
	`
	QueryListUsers = `
		SELECT id, username, email, password, avatar_url, is_online, last_seen
		FROM users
		ORDER BY is_online DESC, username ASC;
	`
	QuerySearchUsers = `
		SELECT id, username, email, password, avatar_url, is_online, last_seen
		FROM users
		WHERE username ILIKE $1 OR email ILIKE $1
		ORDER BY is_online DESC, username ASC;
	`
	QuerySetOnline = `
		UPDATE users
		SET is_online = $2, last_seen = $3
		WHERE id = $1;
	`
	QueryUpdateAvatar = `
		UPDATE users
		SET avatar_url = $2
		WHERE id = $1
		RETURNING id, username, email, password, avatar_url, is_online, last_seen;
	`
)
