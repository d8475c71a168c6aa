package db

import "context"

const listReasons = `
SELECT code, description FROM reason_catalog ORDER BY code
`

func (q *Queries) ListReasons(ctx context.Context) ([]Reason, error) {
	rows, err := q.db.Query(ctx, listReasons)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Reason{}
	for rows.Next() {
		var i Reason
		if err := rows.Scan(&i.Code, &i.Description); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const getReason = `
SELECT code, description FROM reason_catalog WHERE code = $1
`

func (q *Queries) GetReason(ctx context.Context, code string) (Reason, error) {
	row := q.db.QueryRow(ctx, getReason, code)
	var i Reason
	err := row.Scan(&i.Code, &i.Description)
	return i, err
}
