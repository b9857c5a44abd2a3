package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gfabrizzio79/Telecor-App/logging"
	"github.com/gfabrizzio79/Telecor-App/models"
	"github.com/gfabrizzio79/Telecor-App/repository"
	"github.com/gfabrizzio79/Telecor-App/services"
	"github.com/gfabrizzio79/Telecor-App/utils"
)

var reportColumns = []string{
	"Project Name", "Client", "Status", "Staff Full Name", "Staff Role",
	"Start Date", "End Date", "Working Days", "Monthly Salary", "Amount to Pay",
}

// reportCells renders one report row as display strings. Placeholder rows
// show "-" in every resource column.
func reportCells(row models.ReportRow) []string {
	if row.Placeholder {
		return []string{row.ProjectName, row.ClientID, row.Status, "-", "-", "-", "-", "-", "-", "-"}
	}
	return []string{
		row.ProjectName,
		row.ClientID,
		row.Status,
		row.StaffFullName,
		row.StaffRole,
		row.StartDate,
		row.EndDate,
		strconv.Itoa(row.WorkingDays),
		utils.FormatCurrency(row.MonthlySalary),
		utils.FormatCurrency(&row.AmountToPay),
	}
}

// GenerateProjectReport godoc
// @Summary      Build the filtered project report
// @Description  Empty selector arrays mean no filter on that dimension.
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        request  body  models.ReportFilter  true  "Report filter"
// @Success      200  {object}  models.ProjectReport
// @Failure      422  {object}  models.ErrorResponse
// @Router       /api/reports/projects [post]
func GenerateProjectReport(projects *repository.ProjectRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filter models.ReportFilter
		if err := c.ShouldBindJSON(&filter); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		all, err := projects.List()
		if err != nil {
			respondLoadError(c, err, "projects")
			return
		}
		c.JSON(http.StatusOK, services.BuildProjectReport(all, filter))
	}
}

// GenerateProjectReportPDF godoc
// @Summary      Export the filtered project report as PDF
// @Tags         reports
// @Accept       json
// @Param        request  body  models.ReportFilter  true  "Report filter"
// @Success      200  "PDF file"
// @Failure      422  {object}  models.ErrorResponse
// @Router       /api/reports/projects/pdf [post]
func GenerateProjectReportPDF(projects *repository.ProjectRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filter models.ReportFilter
		if err := c.ShouldBindJSON(&filter); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		all, err := projects.List()
		if err != nil {
			respondLoadError(c, err, "projects")
			return
		}
		report := services.BuildProjectReport(all, filter)

		pdf := gofpdf.New("L", "mm", "A4", "")
		pdf.AddPage()
		pdf.SetMargins(10, 10, 10)

		pdf.SetFont("Arial", "B", 18)
		pdf.Cell(277, 10, "Telecor Project Manager")
		pdf.Ln(12)

		widths := []float64{45, 25, 25, 40, 30, 22, 22, 15, 25, 28}

		pdf.SetFont("Arial", "B", 9)
		pdf.SetFillColor(22, 160, 133)
		pdf.SetTextColor(255, 255, 255)
		for i, col := range reportColumns {
			pdf.CellFormat(widths[i], 8, col, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 9)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFillColor(240, 240, 240)

		if len(report.Rows) == 0 {
			pdf.CellFormat(277, 8, "No data matches the selected filters.", "1", 1, "C", false, 0, "")
		} else {
			fill := false
			for _, row := range report.Rows {
				cells := reportCells(row)
				for i, cell := range cells {
					align := "L"
					if i >= 5 {
						align = "R"
					}
					pdf.CellFormat(widths[i], 8, cell, "1", 0, align, fill, 0, "")
				}
				pdf.Ln(-1)
				fill = !fill
			}

			pdf.SetFont("Arial", "B", 9)
			pdf.CellFormat(249, 8, "Total", "1", 0, "R", false, 0, "")
			pdf.CellFormat(28, 8, utils.FormatCurrency(&report.GrandTotal), "1", 1, "R", false, 0, "")
		}

		filename := fmt.Sprintf("Telecor_Report_%s.pdf", time.Now().Format("2006-01-02"))
		c.Header("Content-Type", "application/pdf")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
		if err := pdf.Output(c.Writer); err != nil {
			logging.Logger.Errorf("Failed to generate project report PDF: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
			return
		}
	}
}

// GenerateProjectReportExcel godoc
// @Summary      Export the filtered project report as a spreadsheet
// @Tags         reports
// @Accept       json
// @Param        request  body  models.ReportFilter  true  "Report filter"
// @Success      200  "XLSX file"
// @Failure      422  {object}  models.ErrorResponse
// @Router       /api/reports/projects/excel [post]
func GenerateProjectReportExcel(projects *repository.ProjectRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filter models.ReportFilter
		if err := c.ShouldBindJSON(&filter); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		all, err := projects.List()
		if err != nil {
			respondLoadError(c, err, "projects")
			return
		}
		report := services.BuildProjectReport(all, filter)

		f := excelize.NewFile()
		defer func() {
			if err := f.Close(); err != nil {
				logging.Logger.Errorf("Error closing Excel file: %v", err)
			}
		}()

		sheet := "Report"
		index, err := f.NewSheet(sheet)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating report sheet"})
			return
		}
		f.SetActiveSheet(index)
		f.DeleteSheet("Sheet1")

		for i, col := range reportColumns {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sheet, cell, col)
		}

		rowIdx := 2
		if len(report.Rows) == 0 {
			cell, _ := excelize.CoordinatesToCellName(1, rowIdx)
			f.SetCellValue(sheet, cell, "No data matches the selected filters.")
		} else {
			for _, row := range report.Rows {
				for i, value := range reportCells(row) {
					cell, _ := excelize.CoordinatesToCellName(i+1, rowIdx)
					f.SetCellValue(sheet, cell, value)
				}
				rowIdx++
			}

			totalLabel, _ := excelize.CoordinatesToCellName(len(reportColumns)-1, rowIdx)
			totalCell, _ := excelize.CoordinatesToCellName(len(reportColumns), rowIdx)
			f.SetCellValue(sheet, totalLabel, "Total")
			f.SetCellValue(sheet, totalCell, utils.FormatCurrency(&report.GrandTotal))
		}

		filename := fmt.Sprintf("Telecor_Report_%s.xlsx", time.Now().Format("2006-01-02"))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
		if err := f.Write(c.Writer); err != nil {
			logging.Logger.Errorf("Failed to generate project report spreadsheet: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate spreadsheet"})
			return
		}
	}
}

// GenerateStaffReportPDF godoc
// @Summary      Export the staff database as PDF
// @Description  One sub-table per staff member, sorted by last name, with a
// @Description  page break when a section would overflow.
// @Tags         reports
// @Success      200  "PDF file"
// @Failure      422  {object}  models.ErrorResponse
// @Router       /api/reports/staff/pdf [get]
func GenerateStaffReportPDF(staff *repository.StaffRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		members, err := staff.List()
		if err != nil {
			respondLoadError(c, err, "staff")
			return
		}

		titleCaser := cases.Title(language.Und)
		yesNo := func(flag bool) string {
			if flag {
				return titleCaser.String("yes")
			}
			return titleCaser.String("no")
		}

		pdf := gofpdf.New("P", "mm", "A4", "")
		pdf.AddPage()
		pdf.SetMargins(10, 10, 10)

		pdf.SetFont("Arial", "B", 18)
		pdf.Cell(190, 10, "Telecor Staff Database")
		pdf.Ln(14)

		for _, member := range members {
			if pdf.GetY() > 250 {
				pdf.AddPage()
			}

			pdf.SetFont("Arial", "B", 14)
			pdf.Cell(190, 8, member.FullName)
			pdf.Ln(9)

			salary := ""
			if member.MonthlySalary != nil {
				salary = utils.FormatCurrency(member.MonthlySalary)
			}
			experience := ""
			if member.YearsExperience != nil {
				experience = strconv.Itoa(*member.YearsExperience)
			}
			trainings := ""
			for i, tr := range member.Trainings {
				if i > 0 {
					trainings += "; "
				}
				trainings += fmt.Sprintf("%s (%s)", tr.CourseName, tr.Level)
			}

			fields := [][2]string{
				{"ID", member.ID},
				{"Nationality", member.Nationality},
				{"Document ID", member.DocumentID},
				{"Project Role", member.ProjectRole},
				{"Job Position", member.JobPosition},
				{"Birth Date", member.BirthDate},
				{"Phone", member.Phone},
				{"Email", member.Email},
				{"Monthly Salary", salary},
				{"AFP", member.Afp},
				{"AFP Number", member.AfpNumber},
				{"Social Security Number", member.SocialSecurityNumber},
				{"Passport", member.Passport},
				{"Specialties", strings.Join(member.Specialties, ", ")},
				{"Years of Experience", experience},
				{"Contact Person", member.ContactPerson},
				{"Contact Phone", member.ContactPhone},
				{"Allergic", yesNo(member.IsAllergic)},
				{"Allergy Details", member.AllergyDetails},
				{"Yellow Fever Vaccine", yesNo(member.YellowFeverVaccine)},
				{"Driver", yesNo(member.IsDriver)},
				{"Driver License", member.DriverLicense},
				{"Authorized for Operators", yesNo(member.OperatorAuthorized)},
				{"Trainings", trainings},
			}

			for _, field := range fields {
				if field[1] == "" {
					continue
				}
				if pdf.GetY() > 270 {
					pdf.AddPage()
				}
				pdf.SetFont("Arial", "B", 9)
				pdf.CellFormat(50, 6, field[0], "", 0, "L", false, 0, "")
				pdf.SetFont("Arial", "", 9)
				pdf.MultiCell(140, 6, field[1], "", "L", false)
			}
			pdf.Ln(6)
		}

		filename := fmt.Sprintf("Telecor_Staff_Report_%s.pdf", time.Now().Format("2006-01-02"))
		c.Header("Content-Type", "application/pdf")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
		if err := pdf.Output(c.Writer); err != nil {
			logging.Logger.Errorf("Failed to generate staff report PDF: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
			return
		}
	}
}
