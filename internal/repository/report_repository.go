package repository

import (
	"database/sql"
	"encoding/json"

	"bazireport/internal/model"
)

type ReportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) SaveReport(report *model.Report) error {
	missing, err := json.Marshal(report.MissingSections)
	if err != nil {
		return err
	}

	return r.db.QueryRow(`
		INSERT INTO report(report_id, birth_date, birth_time, location, gender, eight_chars, day_master, zodiac, solar_date, missing_sections, model_used)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`, report.ReportID, report.BirthDate, report.BirthTime, report.Location, report.Gender,
		report.EightChars, report.DayMaster, report.Zodiac, report.SolarDate, missing, report.ModelUsed).Scan(&report.ID)
}

func (r *ReportRepository) GetReports(limit, offset int) ([]model.Report, error) {
	rows, err := r.db.Query(`
		SELECT id, report_id, birth_date, birth_time, location, gender, eight_chars, day_master, zodiac, solar_date, missing_sections, model_used, created_at
		FROM report
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []model.Report
	for rows.Next() {
		var rep model.Report
		var missingJSON []byte
		err := rows.Scan(&rep.ID, &rep.ReportID, &rep.BirthDate, &rep.BirthTime, &rep.Location, &rep.Gender,
			&rep.EightChars, &rep.DayMaster, &rep.Zodiac, &rep.SolarDate, &missingJSON, &rep.ModelUsed, &rep.CreatedAt)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(missingJSON, &rep.MissingSections); err != nil {
			return nil, err
		}
		reports = append(reports, rep)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reports, nil
}

func (r *ReportRepository) GetReportTotal() (int, error) {
	var total int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM report`).Scan(&total)
	return total, err
}
