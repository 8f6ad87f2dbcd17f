package sqlite

const schema = `
CREATE TABLE IF NOT EXISTS categories (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    type TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS questions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    question TEXT NOT NULL,
    answer TEXT NOT NULL,
    category INTEGER NOT NULL,
    difficulty INTEGER NOT NULL CHECK (difficulty > 0),

    FOREIGN KEY(category) REFERENCES categories(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS questions_category_idx ON questions (category);

-- Categories are read-only through the API, so they are seeded here.
INSERT OR IGNORE INTO categories (id, type) VALUES
    (1, 'Science'),
    (2, 'Art'),
    (3, 'Geography'),
    (4, 'History'),
    (5, 'Entertainment'),
    (6, 'Sports');
`
