package prompthouse

import (
	"net/http"
	"strconv"

	"content-studio/database"
	"content-studio/internal/domain/prompthouse"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// ------------------------------
// Rules
// ------------------------------
func ListRules(c *gin.Context) {
	var rules []prompthouse.PromptRule
	if err := database.DB.Order("name ASC").Find(&rules).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load rules"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rules": rules})
}

func CreateRule(c *gin.Context) {
	var req RuleInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rule := prompthouse.PromptRule{Name: req.Name, Text: req.Text, IsActive: true}
	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}
	if err := database.DB.Create(&rule).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create rule", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": rule.ID})
}

// ------------------------------
// Reasoning steps
// ------------------------------
func ListSteps(c *gin.Context) {
	var steps []prompthouse.PromptStep
	if err := database.DB.Order("name ASC").Find(&steps).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load steps"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"steps": steps})
}

func CreateStep(c *gin.Context) {
	var req StepInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	step := prompthouse.PromptStep{Name: req.Name, Text: req.Text, IsActive: true}
	if req.IsActive != nil {
		step.IsActive = *req.IsActive
	}
	if err := database.DB.Create(&step).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create step", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": step.ID})
}

// ------------------------------
// Templates
// ------------------------------
func ListTemplates(c *gin.Context) {
	var templates []prompthouse.PromptTemplate
	if err := database.DB.Order("name ASC").Find(&templates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load templates"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"templates": templates})
}

func GetTemplate(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	tmpl, err := loadTemplate(database.DB, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load template"})
		return
	}
	c.JSON(http.StatusOK, tmpl)
}

func CreateTemplate(c *gin.Context) {
	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var tmpl prompthouse.PromptTemplate
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		tmpl = prompthouse.PromptTemplate{
			Name:           req.Name,
			Description:    req.Description,
			RoleText:       req.RoleText,
			TaskText:       req.TaskText,
			ContextText:    req.ContextText,
			OutputFormat:   req.OutputFormat,
			StopConditions: req.StopConditions,
		}
		if err := tx.Create(&tmpl).Error; err != nil {
			return err
		}
		if err := replaceAssociations(tx, &tmpl, req.RuleIDs, req.StepIDs); err != nil {
			return err
		}
		return replaceDynamicFields(tx, tmpl.ID, req.DynamicFields)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create template", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": tmpl.ID})
}

func UpdateTemplate(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var tmpl prompthouse.PromptTemplate
		if err := tx.First(&tmpl, "id = ?", id).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if req.Name != nil {
			updates["name"] = *req.Name
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if req.RoleText != nil {
			updates["role_text"] = *req.RoleText
		}
		if req.TaskText != nil {
			updates["task_text"] = *req.TaskText
		}
		if req.ContextText != nil {
			updates["context_text"] = *req.ContextText
		}
		if req.OutputFormat != nil {
			updates["output_format"] = *req.OutputFormat
		}
		if req.StopConditions != nil {
			updates["stop_conditions"] = *req.StopConditions
		}
		if len(updates) > 0 {
			if err := tx.Model(&prompthouse.PromptTemplate{}).
				Where("id = ?", tmpl.ID).
				Updates(updates).Error; err != nil {
				return err
			}
		}

		if req.RuleIDs != nil || req.StepIDs != nil {
			if err := replaceAssociations(tx, &tmpl, req.RuleIDs, req.StepIDs); err != nil {
				return err
			}
		}
		if req.DynamicFields != nil {
			return replaceDynamicFields(tx, tmpl.ID, req.DynamicFields)
		}
		return nil
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update template", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func DeleteTemplate(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	res := database.DB.Delete(&prompthouse.PromptTemplate{}, "id = ?", id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete template"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ------------------------------
// GET /prompt-templates/:id/assembled
// ------------------------------
func GetAssembledTemplate(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	tmpl, err := loadTemplate(database.DB, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load template"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"prompt": tmpl.Assemble()})
}

func loadTemplate(db *gorm.DB, id uint) (*prompthouse.PromptTemplate, error) {
	var tmpl prompthouse.PromptTemplate
	err := db.
		Preload("Rules", "is_active = ?", true).
		Preload("ReasoningSteps", "is_active = ?", true).
		Preload("DynamicFields", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		First(&tmpl, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &tmpl, nil
}

func replaceAssociations(tx *gorm.DB, tmpl *prompthouse.PromptTemplate, ruleIDs, stepIDs []uint) error {
	if ruleIDs != nil {
		var rules []prompthouse.PromptRule
		if err := tx.Find(&rules, "id IN ?", ruleIDs).Error; err != nil {
			return err
		}
		if err := tx.Model(tmpl).Association("Rules").Replace(rules); err != nil {
			return err
		}
	}
	if stepIDs != nil {
		var steps []prompthouse.PromptStep
		if err := tx.Find(&steps, "id IN ?", stepIDs).Error; err != nil {
			return err
		}
		if err := tx.Model(tmpl).Association("ReasoningSteps").Replace(steps); err != nil {
			return err
		}
	}
	return nil
}

func replaceDynamicFields(tx *gorm.DB, templateID uint, fields []DynamicFieldInput) error {
	if err := tx.Delete(&prompthouse.DynamicField{}, "template_id = ?", templateID).Error; err != nil {
		return err
	}
	for _, f := range fields {
		row := prompthouse.DynamicField{
			TemplateID: templateID,
			LabelKey:   f.LabelKey,
			FieldValue: f.FieldValue,
			SortOrder:  f.SortOrder,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}
