package adminControllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/syxhsssss/pet-management-system/models"
)

// GET /api/admin/orders/export
func ExportOrdersToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("User").Preload("Items").
			Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"OrderNo", "Username", "TotalAmount", "Status",
			"RecipientName", "RecipientPhone", "ShippingAddress",
			"Items", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders {
			row := sheet.AddRow()

			row.AddCell().SetValue(o.OrderNo)
			row.AddCell().SetValue(o.User.Username)
			row.AddCell().SetValue(o.TotalAmount.StringFixed(2))
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(o.RecipientName)
			row.AddCell().SetValue(o.RecipientPhone)
			row.AddCell().SetValue(o.ShippingAddress)

			var lines []string
			for _, item := range o.Items {
				lines = append(lines, item.ProductName+" x"+strconv.Itoa(item.Quantity))
			}
			row.AddCell().SetValue(strings.Join(lines, "; "))

			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to write Excel file"})
			return
		}
	}
}
