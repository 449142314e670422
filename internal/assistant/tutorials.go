package assistant

const excelTutorial = `📚 Excel處理教學

🎯 基本步驟：
1. 📂 開啟檔案："幫我開啟Excel檔案"
2. 🔍 檢視數據：我會自動分析檔案結構
3. 🧹 清理數據："清理重複項和缺失值"
4. 📊 分析數據："分析薪資統計" 或 "計算平均值"
5. 📈 製作圖表："製作薪資分布圖"
6. 📋 生成報表："生成詳細分析報表"
7. 💾 儲存結果："匯出處理結果"

💡 實用範例：
• "分析各部門平均薪資"
• "找出薪資異常值"
• "製作薪資成長趨勢圖"
• "比較去年同期業績"

🔧 進階功能：
• 數據透視表分析
• 條件格式化
• 複雜公式計算
• 多工作表處理`

const analysisTutorial = `📚 數據分析教學

🎯 分析流程：
1. 📂 載入資料：開啟Excel或CSV檔案
2. 🔍 檢視結構：確認欄位類型與缺失情況
3. 🧹 清理資料：去重與填補缺失值
4. 📊 選擇分析：描述統計、相關分析或分組統計

💡 可用的分析指令：
• "計算平均值和總和"
• "分析各部門薪資水準"
• "找出數據中的異常值"
• "分析薪資與年齡的相關性"

📋 分析結果會包含：
• 統計量摘要
• 分組比較
• 相關性與異常值提示`

const chartTutorial = `📚 圖表製作教學

🎯 製作步驟：
1. 📂 先載入含數值欄位的資料
2. 📊 說出需求："製作圖表" 或指定類型
3. 📈 我會依資料自動挑選合適的圖表組合

💡 圖表類型選擇：
• 折線圖：趨勢變化
• 柱狀圖：類別比較
• 圓餅圖：比例關係
• 散佈圖：兩變數關聯
• 盒鬚圖：分布範圍
• 熱力圖：相關矩陣

🔧 範例指令：
• "製作薪資分布圖"
• "畫出業績的折線圖"
• "visualize 部門比較"`
