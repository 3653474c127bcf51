package models

// Job is a stored job posting document. Posters control most of the field
// set (title, description, salary and whatever else the posting form sends),
// so the record stays schemaless beyond the keys the API stamps itself
// (_id, createdAt) and the ones the portal conventions rely on (postedBy,
// skills).
type Job map[string]interface{}
