// Package parsertest provides daily report sheet fixtures for tests.
package parsertest

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

// TemplateRows returns a sheet grid laid out like the standard template.
// It yields 2 tasks, 1 plan, 3 workers, 1 machine, 2 problems and
// 1 requirement.
func TemplateRows() [][]string {
	rows := [][]string{
		{"XX项目工作日报"},
		{"日期", "2024-05-10"},
		{"1", "项目整体进度", "", "", "进度正常，无延误"},
		{},
		{"序号", "任务名称", "计划进度", "", "实际进度", "偏差原因", "影响及措施"},
		{"2", "逐项进度汇报"},
		{"2.1", "基础施工", "80%", "", "75%", "雨天停工", "周末加班"},
		{"2.2", "主体结构", "50%", "", "50%"},
		{"3", "明日工作计划"},
		{"3.1", "钢筋绑扎", "完成50%", "", "张三", "钢筋10吨", "无"},
		{"3.2", ""},
	}
	for len(rows) < 20 {
		rows = append(rows, []string{})
	}
	return append(rows,
		[]string{"二", "各工种工作汇报"},
		[]string{"序号", "姓名", "工种", "类型", "工作内容", "", "工时"},
		[]string{"1", "张三", "钢筋工", "班组", "钢筋绑扎", "", "8"},
		[]string{"2", " 李四 ", "木工", "点工", "支模", "", "8"},
		[]string{"3", "王五", "电工", "班组", "临电布线", "", "4"},
		[]string{"4", ""},
		[]string{"三", "机械租赁情况"},
		[]string{"序号", "机械名称", "数量", "吨位", "用途", "合班", "备注"},
		[]string{"1", "汽车吊", "1", "25t", "吊装", "1", "日租"},
		[]string{"四", "问题反馈及需求"},
		[]string{"1", "问题反馈"},
		[]string{"序号", "问题描述", "", "原因", "影响", "处理进度"},
		[]string{"1.1", "钢筋未到场", "", "供应商延误", "影响绑扎", "已催促"},
		[]string{"2", "塔吊故障", "", "电机损坏", "停工半天", "维修中"},
		[]string{"2", "需求描述"},
		[]string{"序号", "需求描述", "", "紧急程度", "", "期望时间"},
		[]string{"1", "增派木工", "", "紧急", "", "5月12日"},
		[]string{"五", "其他事项"},
		[]string{"1", "不应被采集"},
	)
}

// WriteWorkbook saves sheets (name → grid, in the given order) as an xlsx
// file at path.
func WriteWorkbook(t testing.TB, path string, names []string, grids [][][]string) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, name := range names {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				t.Fatalf("rename sheet: %v", err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			t.Fatalf("new sheet %q: %v", name, err)
		}
		for r, row := range grids[i] {
			if len(row) == 0 {
				continue
			}
			values := make([]interface{}, len(row))
			for c, v := range row {
				values[c] = v
			}
			cell, _ := excelize.CoordinatesToCellName(1, r+1)
			if err := f.SetSheetRow(name, cell, &values); err != nil {
				t.Fatalf("write row %d of %q: %v", r, name, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
}
